// Package group contains study-group use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// LeaveGroupInput represents the input for leaving a study group.
type LeaveGroupInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// LeaveGroupOutput represents the output of leaving a study group.
type LeaveGroupOutput struct {
	Message string
}

// LeaveGroupUseCase handles study group leaving logic.
type LeaveGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewLeaveGroupUseCase creates a new LeaveGroupUseCase instance.
func NewLeaveGroupUseCase(groupRepo adapter.GroupRepository) *LeaveGroupUseCase {
	return &LeaveGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute removes the user from the group. The owner cannot leave their own group.
func (uc *LeaveGroupUseCase) Execute(ctx context.Context, input LeaveGroupInput) (*LeaveGroupOutput, error) {
	group, err := uc.groupRepo.FindGroupByID(ctx, input.GroupID)
	if err != nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNotFound,
			"study group not found",
			domainerror.ErrGroupNotFound,
		)
	}

	if group.OwnerID == input.UserID {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeOwnerCannotLeave,
			"group owner cannot leave the group",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	isMember, err := uc.groupRepo.IsMember(ctx, group.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"not a member of this group",
			domainerror.ErrNotGroupMember,
		)
	}

	if err := uc.groupRepo.DeleteMember(ctx, group.ID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to leave study group: %w", err)
	}

	return &LeaveGroupOutput{Message: "Left study group"}, nil
}
