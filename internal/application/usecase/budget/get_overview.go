// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// overviewCacheView is the cache view key for the unfiltered budget overview.
const overviewCacheView = "budget-overview"

// GetOverviewInput represents the input for budget overview retrieval.
type GetOverviewInput struct {
	UserID    uuid.UUID
	StartDate *string // YYYY-MM-DD, optional
	EndDate   *string // YYYY-MM-DD, optional
}

// GetOverviewOutput represents the output of budget overview retrieval. It is
// JSON-serializable so the unfiltered view can be cached.
type GetOverviewOutput struct {
	Aggregate  AggregateResult             `json:"aggregate"`
	OverBudget []entity.OverBudgetCategory `json:"over_budget"`
}

// GetOverviewUseCase handles budget overview retrieval. The unfiltered view
// is served from the overview cache when present; mutations invalidate it.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	limitRepo       adapter.BudgetLimitRepository
	overviewCache   adapter.OverviewCache
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	limitRepo adapter.BudgetLimitRepository,
	overviewCache adapter.OverviewCache,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		limitRepo:       limitRepo,
		overviewCache:   overviewCache,
	}
}

// Execute computes the user's budget overview.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	cacheable := input.StartDate == nil && input.EndDate == nil

	if cacheable && uc.overviewCache != nil {
		payload, ok, err := uc.overviewCache.Get(ctx, input.UserID, overviewCacheView)
		if err != nil {
			slog.Warn("Overview cache read failed", "error", err, "userID", input.UserID)
		} else if ok {
			var output GetOverviewOutput
			if err := json.Unmarshal(payload, &output); err == nil {
				return &output, nil
			}
			slog.Warn("Dropping undecodable overview cache entry", "userID", input.UserID)
		}
	}

	filter := adapter.TransactionFilter{UserID: input.UserID}

	if input.StartDate != nil {
		start, err := entity.ParseCalendarDate(*input.StartDate)
		if err != nil {
			return nil, domainerror.NewAttendanceError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid start date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		filter.StartDate = &start
	}

	if input.EndDate != nil {
		end, err := entity.ParseCalendarDate(*input.EndDate)
		if err != nil {
			return nil, domainerror.NewAttendanceError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid end date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		filter.EndDate = &end
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	limits, err := uc.limitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget limits: %w", err)
	}

	aggregate := Aggregate(transactions, limits)
	output := &GetOverviewOutput{
		Aggregate:  aggregate,
		OverBudget: OverBudget(aggregate, limits),
	}

	if cacheable && uc.overviewCache != nil {
		if payload, err := json.Marshal(output); err == nil {
			if err := uc.overviewCache.Set(ctx, input.UserID, overviewCacheView, payload); err != nil {
				slog.Warn("Overview cache write failed", "error", err, "userID", input.UserID)
			}
		}
	}

	return output, nil
}
