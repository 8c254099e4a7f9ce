// Package group contains study-group use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// ListGroupsInput represents the input for study group listing.
type ListGroupsInput struct {
	UserID uuid.UUID
}

// ListGroupsOutput represents the output of study group listing.
type ListGroupsOutput struct {
	Groups []*entity.StudyGroupWithMembers
}

// ListGroupsUseCase handles study group listing logic.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{
		groupRepo: groupRepo,
	}
}

// Execute lists all groups with member counts, flagging the caller's memberships.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, input ListGroupsInput) (*ListGroupsOutput, error) {
	groups, err := uc.groupRepo.ListGroups(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list study groups: %w", err)
	}

	return &ListGroupsOutput{Groups: groups}, nil
}
