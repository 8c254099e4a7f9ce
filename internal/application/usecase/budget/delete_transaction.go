// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Message string
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	overviewCache   adapter.OverviewCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	overviewCache adapter.OverviewCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		overviewCache:   overviewCache,
	}
}

// Execute performs the transaction deletion after an ownership check.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &DeleteTransactionOutput{Message: "Transaction deleted"}, nil
}
