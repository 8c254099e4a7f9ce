// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudyGroup represents a group-study room in the StudySync system.
type StudyGroup struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Subject     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewStudyGroup creates a new StudyGroup entity.
func NewStudyGroup(ownerID uuid.UUID, name, subject, description string) *StudyGroup {
	now := time.Now().UTC()

	return &StudyGroup{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Subject:     subject,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GroupMember represents a user's membership in a study group.
type GroupMember struct {
	GroupID  uuid.UUID
	UserID   uuid.UUID
	JoinedAt time.Time
}

// StudyGroupWithMembers represents a group with its member count.
type StudyGroupWithMembers struct {
	Group       *StudyGroup
	MemberCount int
	IsMember    bool
}
