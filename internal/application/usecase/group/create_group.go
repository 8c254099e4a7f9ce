// Package group contains study-group use cases.
package group

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// CreateGroupInput represents the input for study group creation.
type CreateGroupInput struct {
	OwnerID     uuid.UUID
	Name        string
	Subject     string
	Description string
}

// CreateGroupOutput represents the output of study group creation.
type CreateGroupOutput struct {
	Group *entity.StudyGroup
}

// CreateGroupUseCase handles study group creation logic.
type CreateGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(groupRepo adapter.GroupRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute creates the group with the owner as its first member.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeEmptyGroupName,
			"group name cannot be empty",
			domainerror.ErrEmptyGroupName,
		)
	}

	group := entity.NewStudyGroup(
		input.OwnerID,
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Subject),
		strings.TrimSpace(input.Description),
	)

	if err := uc.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create study group: %w", err)
	}

	member := &entity.GroupMember{
		GroupID:  group.ID,
		UserID:   input.OwnerID,
		JoinedAt: time.Now().UTC(),
	}
	if err := uc.groupRepo.CreateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add owner as member: %w", err)
	}

	return &CreateGroupOutput{Group: group}, nil
}
