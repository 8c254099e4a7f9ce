// Package budget contains budget-tracking use cases.
package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// fakeTransactionRepo returns a fixed transaction list and records the
// filter it was asked for.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	gotFilter    adapter.TransactionFilter
	err          error
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return f.err
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, f.err
}

func (f *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return f.transactions, f.err
}

func (f *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	f.gotFilter = filter
	return f.transactions, f.err
}

func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return f.err
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

func txWithAmount(category, description, amount string, txType entity.TransactionType) *entity.Transaction {
	value, _ := decimal.NewFromString(amount)
	return &entity.Transaction{
		Category:    category,
		Description: description,
		Date:        entity.NewCalendarDate(2025, 3, 5),
		Amount:      value,
		Type:        txType,
	}
}

func TestListTransactionsUseCase_SearchIsLiteral(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		txWithAmount("Books", "Textbook 50% off", "30", entity.TransactionTypeExpense),
		txWithAmount("Food", "Lunch", "12", entity.TransactionTypeExpense),
	}}
	uc := NewListTransactionsUseCase(repo)

	output, err := uc.Execute(context.Background(), ListTransactionsInput{
		UserID: uuid.New(),
		Search: "%",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Transactions) != 1 || output.Transactions[0].Description != "Textbook 50% off" {
		t.Fatalf("search %% matched %d transactions, want only the description containing a literal percent sign", len(output.Transactions))
	}
	if !output.Totals.ExpenseTotal.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expense total = %s, want 30", output.Totals.ExpenseTotal)
	}
}

func TestListTransactionsUseCase_TotalsOverFilteredSet(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		txWithAmount("Allowance", "Monthly allowance", "800", entity.TransactionTypeIncome),
		txWithAmount("Food", "Groceries", "120", entity.TransactionTypeExpense),
		txWithAmount("Transport", "Bus pass", "60", entity.TransactionTypeExpense),
	}}
	uc := NewListTransactionsUseCase(repo)

	output, err := uc.Execute(context.Background(), ListTransactionsInput{
		UserID:   uuid.New(),
		Category: "Food",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Transactions) != 1 {
		t.Fatalf("category filter matched %d transactions, want 1", len(output.Transactions))
	}
	if !output.Totals.ExpenseTotal.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expense total = %s, want 120", output.Totals.ExpenseTotal)
	}
	if !output.Totals.IncomeTotal.IsZero() {
		t.Errorf("income total = %s, want 0", output.Totals.IncomeTotal)
	}
	if !output.Totals.Balance.Equal(decimal.NewFromInt(-120)) {
		t.Errorf("balance = %s, want -120", output.Totals.Balance)
	}
}

func TestListTransactionsUseCase_RejectsUnknownType(t *testing.T) {
	uc := NewListTransactionsUseCase(&fakeTransactionRepo{})

	unknown := "transfer"
	_, err := uc.Execute(context.Background(), ListTransactionsInput{
		UserID: uuid.New(),
		Type:   &unknown,
	})
	if err == nil {
		t.Fatal("expected an error for an unknown transaction type")
	}
}
