// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        string // YYYY-MM-DD
	Category    string
	Amount      decimal.Decimal
	Type        string // expense or income
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	overviewCache   adapter.OverviewCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	overviewCache adapter.OverviewCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		overviewCache:   overviewCache,
	}
}

// Execute performs the transaction creation and drops the user's cached overview.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transactionType := entity.TransactionType(input.Type)
	if !transactionType.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidTransactionType,
			"invalid transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if strings.TrimSpace(input.Category) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyCategory,
			"category cannot be empty",
			domainerror.ErrEmptyCategory,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	date, err := entity.ParseCalendarDate(input.Date)
	if err != nil {
		return nil, domainerror.NewAttendanceError(
			domainerror.ErrCodeInvalidDateFormat,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}

	transaction := entity.NewTransaction(
		input.UserID,
		date,
		strings.TrimSpace(input.Category),
		input.Amount,
		transactionType,
		strings.TrimSpace(input.Description),
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// invalidateOverview drops the user's cached overview. Cache failures are
// logged, not surfaced; the next read recomputes from the database.
func invalidateOverview(ctx context.Context, cache adapter.OverviewCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate overview cache", "error", err, "userID", userID)
	}
}
