// Package group contains study-group use cases.
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// JoinGroupInput represents the input for joining a study group.
type JoinGroupInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// JoinGroupOutput represents the output of joining a study group.
type JoinGroupOutput struct {
	Group       *entity.StudyGroup
	MemberCount int
}

// JoinGroupUseCase handles study group joining logic.
type JoinGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewJoinGroupUseCase creates a new JoinGroupUseCase instance.
func NewJoinGroupUseCase(groupRepo adapter.GroupRepository) *JoinGroupUseCase {
	return &JoinGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute adds the user to the group.
func (uc *JoinGroupUseCase) Execute(ctx context.Context, input JoinGroupInput) (*JoinGroupOutput, error) {
	group, err := uc.groupRepo.FindGroupByID(ctx, input.GroupID)
	if err != nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNotFound,
			"study group not found",
			domainerror.ErrGroupNotFound,
		)
	}

	isMember, err := uc.groupRepo.IsMember(ctx, group.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeAlreadyGroupMember,
			"already a member of this group",
			domainerror.ErrAlreadyGroupMember,
		)
	}

	member := &entity.GroupMember{
		GroupID:  group.ID,
		UserID:   input.UserID,
		JoinedAt: time.Now().UTC(),
	}
	if err := uc.groupRepo.CreateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to join study group: %w", err)
	}

	count, err := uc.groupRepo.CountMembers(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return &JoinGroupOutput{
		Group:       group,
		MemberCount: count,
	}, nil
}
