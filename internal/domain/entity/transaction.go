// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a budget transaction in the StudySync system.
// Categories are plain strings chosen by the student (e.g. "Food", "Books").
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        CalendarDate
	Category    string
	Amount      decimal.Decimal // Always positive; Type discriminates direction
	Type        TransactionType
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date CalendarDate,
	category string,
	amount decimal.Decimal,
	transactionType TransactionType,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Category:    category,
		Amount:      amount,
		Type:        transactionType,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}
