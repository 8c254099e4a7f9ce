// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/studysync/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for study group creation.
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// GroupResponse represents a study group in API responses.
type GroupResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	MemberCount int       `json:"member_count"`
	IsMember    bool      `json:"is_member"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupListResponse represents the study group listing.
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse converts a study group with membership info to a GroupResponse DTO.
func ToGroupResponse(group *entity.StudyGroup, memberCount int, isMember bool) GroupResponse {
	return GroupResponse{
		ID:          group.ID.String(),
		OwnerID:     group.OwnerID.String(),
		Name:        group.Name,
		Subject:     group.Subject,
		Description: group.Description,
		MemberCount: memberCount,
		IsMember:    isMember,
		CreatedAt:   group.CreatedAt,
	}
}
