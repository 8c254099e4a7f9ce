// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/application/usecase/budget"
	"github.com/studysync/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Description string          `json:"description"`
}

// SetLimitRequest represents the request body for budget limit creation or update.
type SetLimitRequest struct {
	Category string          `json:"category" binding:"required,min=1,max=100"`
	Limit    decimal.Decimal `json:"limit" binding:"required"`
	Period   string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionTotalsResponse represents income/expense totals for a listing.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Balance      string `json:"balance"`
}

// TransactionListResponse represents the transaction listing with totals.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// LimitResponse represents a budget limit in API responses.
type LimitResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Period   string `json:"period"`
}

// LimitListResponse represents the budget limit listing.
type LimitListResponse struct {
	Limits []LimitResponse `json:"limits"`
}

// OverBudgetResponse represents a category that exceeded its limit.
type OverBudgetResponse struct {
	Category  string `json:"category"`
	Limit     string `json:"limit"`
	Spent     string `json:"spent"`
	Overspent string `json:"overspent"`
}

// OverviewResponse represents the budget overview with category breakdowns.
type OverviewResponse struct {
	ExpensesByCategory map[string]string    `json:"expenses_by_category"`
	IncomeByCategory   map[string]string    `json:"income_by_category"`
	TotalExpenses      string               `json:"total_expenses"`
	TotalIncome        string               `json:"total_income"`
	Balance            string               `json:"balance"`
	PercentOfTotal     map[string]int       `json:"percent_of_total"`
	PercentOfLimit     map[string]int       `json:"percent_of_limit"`
	OverBudget         []OverBudgetResponse `json:"over_budget"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Date:        transaction.Date.String(),
		Category:    transaction.Category,
		Amount:      transaction.Amount.String(),
		Type:        string(transaction.Type),
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts transactions and totals to a listing DTO.
func ToTransactionListResponse(transactions []*entity.Transaction, totals entity.TransactionTotals) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		out[i] = ToTransactionResponse(transaction)
	}

	return TransactionListResponse{
		Transactions: out,
		Totals: TransactionTotalsResponse{
			IncomeTotal:  totals.IncomeTotal.String(),
			ExpenseTotal: totals.ExpenseTotal.String(),
			Balance:      totals.Balance.String(),
		},
	}
}

// ToLimitResponse converts a domain BudgetLimit entity to a LimitResponse DTO.
func ToLimitResponse(limit *entity.BudgetLimit) LimitResponse {
	return LimitResponse{
		ID:       limit.ID.String(),
		Category: limit.Category,
		Limit:    limit.Limit.String(),
		Period:   string(limit.Period),
	}
}

// ToOverviewResponse converts the overview aggregate to its DTO.
func ToOverviewResponse(aggregate budget.AggregateResult, overBudget []entity.OverBudgetCategory) OverviewResponse {
	overBudgetOut := make([]OverBudgetResponse, len(overBudget))
	for i, ob := range overBudget {
		overBudgetOut[i] = OverBudgetResponse{
			Category:  ob.Category,
			Limit:     ob.Limit.String(),
			Spent:     ob.Spent.String(),
			Overspent: ob.Overspent.String(),
		}
	}

	return OverviewResponse{
		ExpensesByCategory: decimalMapToStrings(aggregate.ExpensesByCategory),
		IncomeByCategory:   decimalMapToStrings(aggregate.IncomeByCategory),
		TotalExpenses:      aggregate.TotalExpenses.String(),
		TotalIncome:        aggregate.TotalIncome.String(),
		Balance:            aggregate.Balance.String(),
		PercentOfTotal:     aggregate.PercentOfTotal,
		PercentOfLimit:     aggregate.PercentOfLimit,
		OverBudget:         overBudgetOut,
	}
}

func decimalMapToStrings(in map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v.String()
	}
	return out
}
