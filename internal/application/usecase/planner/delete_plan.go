// Package planner contains AI study-planner use cases.
package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// DeletePlanInput represents the input for study plan deletion.
type DeletePlanInput struct {
	PlanID uuid.UUID
	UserID uuid.UUID
}

// DeletePlanOutput represents the output of study plan deletion.
type DeletePlanOutput struct {
	Message string
}

// DeletePlanUseCase handles study plan deletion logic.
type DeletePlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase instance.
func NewDeletePlanUseCase(planRepo adapter.PlanRepository) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the study plan deletion after an ownership check.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, input DeletePlanInput) (*DeletePlanOutput, error) {
	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil || plan.UserID != input.UserID {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodePlanNotFound,
			"study plan not found",
			domainerror.ErrPlanNotFound,
		)
	}

	if err := uc.planRepo.Delete(ctx, plan.ID); err != nil {
		return nil, fmt.Errorf("failed to delete study plan: %w", err)
	}

	return &DeletePlanOutput{Message: "Study plan deleted"}, nil
}
