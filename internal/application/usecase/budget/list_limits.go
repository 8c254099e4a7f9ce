// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// ListLimitsInput represents the input for budget limit listing.
type ListLimitsInput struct {
	UserID uuid.UUID
}

// ListLimitsOutput represents the output of budget limit listing.
type ListLimitsOutput struct {
	Limits []*entity.BudgetLimit
}

// ListLimitsUseCase handles budget limit listing logic.
type ListLimitsUseCase struct {
	limitRepo adapter.BudgetLimitRepository
}

// NewListLimitsUseCase creates a new ListLimitsUseCase instance.
func NewListLimitsUseCase(limitRepo adapter.BudgetLimitRepository) *ListLimitsUseCase {
	return &ListLimitsUseCase{
		limitRepo: limitRepo,
	}
}

// Execute lists the user's budget limits.
func (uc *ListLimitsUseCase) Execute(ctx context.Context, input ListLimitsInput) (*ListLimitsOutput, error) {
	limits, err := uc.limitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget limits: %w", err)
	}

	return &ListLimitsOutput{Limits: limits}, nil
}
