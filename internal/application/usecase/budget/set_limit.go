// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// SetLimitInput represents the input for budget limit creation or update.
type SetLimitInput struct {
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
	Period   string // weekly, monthly, or yearly
}

// SetLimitOutput represents the output of budget limit creation or update.
type SetLimitOutput struct {
	Limit *entity.BudgetLimit
}

// SetLimitUseCase handles budget limit creation and update logic. Setting a
// limit for a category that already has one replaces it.
type SetLimitUseCase struct {
	limitRepo     adapter.BudgetLimitRepository
	overviewCache adapter.OverviewCache
}

// NewSetLimitUseCase creates a new SetLimitUseCase instance.
func NewSetLimitUseCase(
	limitRepo adapter.BudgetLimitRepository,
	overviewCache adapter.OverviewCache,
) *SetLimitUseCase {
	return &SetLimitUseCase{
		limitRepo:     limitRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the budget limit upsert.
func (uc *SetLimitUseCase) Execute(ctx context.Context, input SetLimitInput) (*SetLimitOutput, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyCategory,
			"category cannot be empty",
			domainerror.ErrEmptyCategory,
		)
	}

	if !input.Limit.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidLimitAmount,
			"limit amount must be positive",
			domainerror.ErrInvalidLimitAmount,
		)
	}

	period := entity.LimitPeriod(input.Period)
	if !period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidLimitPeriod,
			"invalid limit period",
			domainerror.ErrInvalidLimitPeriod,
		)
	}

	limit := entity.NewBudgetLimit(input.UserID, strings.TrimSpace(input.Category), input.Limit, period)

	if err := uc.limitRepo.Upsert(ctx, limit); err != nil {
		return nil, fmt.Errorf("failed to set budget limit: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &SetLimitOutput{Limit: limit}, nil
}
