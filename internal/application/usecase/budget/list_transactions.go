// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for transaction listing.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
	Category  string
	Type      *string
	Search    string
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Totals       entity.TransactionTotals
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's transactions with totals over the filtered set.
// The repository narrows by user and date range; the remaining criteria go
// through FilterTransactions so matching rules stay in one place.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	criteria := TransactionCriteria{
		Category: input.Category,
		Search:   input.Search,
	}

	if input.StartDate != nil {
		start, err := entity.ParseCalendarDate(*input.StartDate)
		if err != nil {
			return nil, domainerror.NewAttendanceError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid start date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		criteria.StartDate = &start
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
		criteria.EndDate = &end
	}

	if input.Type != nil {
		transactionType := entity.TransactionType(*input.Type)
		if !transactionType.IsValid() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidTransactionType,
				"invalid transaction type",
				domainerror.ErrInvalidTransactionType,
			)
		}
		criteria.Type = &transactionType
	}

	fetched, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: criteria.StartDate,
		EndDate:   criteria.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := FilterTransactions(fetched, criteria)

	var totals entity.TransactionTotals
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = totals.IncomeTotal.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = totals.ExpenseTotal.Add(t.Amount)
		}
	}
	totals.Balance = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	return &ListTransactionsOutput{
		Transactions: transactions,
		Totals:       totals,
	}, nil
}
