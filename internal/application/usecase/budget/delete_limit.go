// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// DeleteLimitInput represents the input for budget limit deletion.
type DeleteLimitInput struct {
	UserID   uuid.UUID
	Category string
}

// DeleteLimitOutput represents the output of budget limit deletion.
type DeleteLimitOutput struct {
	Message string
}

// DeleteLimitUseCase handles budget limit deletion logic.
type DeleteLimitUseCase struct {
	limitRepo     adapter.BudgetLimitRepository
	overviewCache adapter.OverviewCache
}

// NewDeleteLimitUseCase creates a new DeleteLimitUseCase instance.
func NewDeleteLimitUseCase(
	limitRepo adapter.BudgetLimitRepository,
	overviewCache adapter.OverviewCache,
) *DeleteLimitUseCase {
	return &DeleteLimitUseCase{
		limitRepo:     limitRepo,
		overviewCache: overviewCache,
	}
}

// Execute removes the user's limit for the given category.
func (uc *DeleteLimitUseCase) Execute(ctx context.Context, input DeleteLimitInput) (*DeleteLimitOutput, error) {
	limit, err := uc.limitRepo.FindByUserAndCategory(ctx, input.UserID, input.Category)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeLimitNotFound,
			"budget limit not found",
			domainerror.ErrLimitNotFound,
		)
	}

	if err := uc.limitRepo.Delete(ctx, limit.ID); err != nil {
		return nil, fmt.Errorf("failed to delete budget limit: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &DeleteLimitOutput{Message: "Budget limit deleted"}, nil
}
