// Package planner contains AI study-planner use cases.
package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// ListPlansInput represents the input for study plan listing.
type ListPlansInput struct {
	UserID uuid.UUID
}

// ListPlansOutput represents the output of study plan listing.
type ListPlansOutput struct {
	Plans []*entity.StudyPlan
}

// ListPlansUseCase handles study plan listing logic.
type ListPlansUseCase struct {
	planRepo adapter.PlanRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo adapter.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
	}
}

// Execute lists the user's saved study plans, newest first.
func (uc *ListPlansUseCase) Execute(ctx context.Context, input ListPlansInput) (*ListPlansOutput, error) {
	plans, err := uc.planRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list study plans: %w", err)
	}

	return &ListPlansOutput{Plans: plans}, nil
}
