// Package budget contains budget-tracking use cases.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/domain/entity"
)

// AggregateResult holds the derived budget view-model for a transaction set.
// Expense percentages are integer points, rounded half up; both percentage
// maps are keyed by expense category, and PercentOfLimit has entries only
// for categories with a configured limit.
type AggregateResult struct {
	ExpensesByCategory map[string]decimal.Decimal
	IncomeByCategory   map[string]decimal.Decimal
	TotalExpenses      decimal.Decimal
	TotalIncome        decimal.Decimal
	Balance            decimal.Decimal
	PercentOfTotal     map[string]int
	PercentOfLimit     map[string]int
}

// Aggregate computes category rollups, grand totals, and percentage maps for
// the given transactions. Empty input yields a zero-valued result; division
// by zero is defined as 0 throughout.
func Aggregate(transactions []*entity.Transaction, limits []*entity.BudgetLimit) AggregateResult {
	result := AggregateResult{
		ExpensesByCategory: make(map[string]decimal.Decimal),
		IncomeByCategory:   make(map[string]decimal.Decimal),
		PercentOfTotal:     make(map[string]int),
		PercentOfLimit:     make(map[string]int),
	}

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeExpense:
			result.ExpensesByCategory[t.Category] = result.ExpensesByCategory[t.Category].Add(t.Amount)
			result.TotalExpenses = result.TotalExpenses.Add(t.Amount)
		case entity.TransactionTypeIncome:
			result.IncomeByCategory[t.Category] = result.IncomeByCategory[t.Category].Add(t.Amount)
			result.TotalIncome = result.TotalIncome.Add(t.Amount)
		}
	}

	result.Balance = result.TotalIncome.Sub(result.TotalExpenses)

	for category, spent := range result.ExpensesByCategory {
		result.PercentOfTotal[category] = percentOf(spent, result.TotalExpenses)
	}

	for _, limit := range limits {
		spent, ok := result.ExpensesByCategory[limit.Category]
		if !ok {
			continue
		}
		result.PercentOfLimit[limit.Category] = percentOf(spent, limit.Limit)
	}

	return result
}

// OverBudget derives the categories whose spending exceeds their limit,
// with the overspend amount. Categories without spending are never over
// budget.
func OverBudget(result AggregateResult, limits []*entity.BudgetLimit) []entity.OverBudgetCategory {
	over := make([]entity.OverBudgetCategory, 0)

	for _, limit := range limits {
		spent, ok := result.ExpensesByCategory[limit.Category]
		if !ok || spent.LessThanOrEqual(limit.Limit) {
			continue
		}
		over = append(over, entity.OverBudgetCategory{
			Category:  limit.Category,
			Limit:     limit.Limit,
			Spent:     spent,
			Overspent: spent.Sub(limit.Limit),
		})
	}

	return over
}

// percentOf returns round-half-up(100 * part / whole) as integer points,
// and 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	return int(part.Mul(decimal.NewFromInt(100)).Div(whole).Round(0).IntPart())
}
