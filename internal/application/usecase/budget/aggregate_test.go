// Package budget contains budget-tracking use cases.
package budget

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/domain/entity"
)

func tx(category string, amount int64, txType entity.TransactionType) *entity.Transaction {
	return &entity.Transaction{
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Type:     txType,
	}
}

func limit(category string, amount int64) *entity.BudgetLimit {
	return &entity.BudgetLimit{
		Category: category,
		Limit:    decimal.NewFromInt(amount),
		Period:   entity.LimitPeriodMonthly,
	}
}

func TestAggregate_Totals(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("Allowance", 200, entity.TransactionTypeIncome),
		tx("Part-time Job", 150, entity.TransactionTypeIncome),
		tx("Food", 25, entity.TransactionTypeExpense),
		tx("Books", 85, entity.TransactionTypeExpense),
		tx("Food", 15, entity.TransactionTypeExpense),
	}

	result := Aggregate(transactions, nil)

	if !result.TotalIncome.Equal(decimal.NewFromInt(350)) {
		t.Errorf("TotalIncome = %s, want 350", result.TotalIncome)
	}
	if !result.TotalExpenses.Equal(decimal.NewFromInt(125)) {
		t.Errorf("TotalExpenses = %s, want 125", result.TotalExpenses)
	}
	if !result.Balance.Equal(decimal.NewFromInt(225)) {
		t.Errorf("Balance = %s, want 225", result.Balance)
	}

	if !result.ExpensesByCategory["Food"].Equal(decimal.NewFromInt(40)) {
		t.Errorf("Food = %s, want 40", result.ExpensesByCategory["Food"])
	}
	if !result.ExpensesByCategory["Books"].Equal(decimal.NewFromInt(85)) {
		t.Errorf("Books = %s, want 85", result.ExpensesByCategory["Books"])
	}
	if !result.IncomeByCategory["Allowance"].Equal(decimal.NewFromInt(200)) {
		t.Errorf("Allowance = %s, want 200", result.IncomeByCategory["Allowance"])
	}

	// Category sums always reconcile with the grand total.
	sum := decimal.Zero
	for _, v := range result.ExpensesByCategory {
		sum = sum.Add(v)
	}
	if !sum.Equal(result.TotalExpenses) {
		t.Errorf("category sum %s != grand total %s", sum, result.TotalExpenses)
	}
}

func TestAggregate_PercentOfTotal(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("Food", 40, entity.TransactionTypeExpense),
		tx("Books", 85, entity.TransactionTypeExpense),
	}

	result := Aggregate(transactions, nil)

	// 40/125 = 32%, 85/125 = 68%.
	want := map[string]int{"Food": 32, "Books": 68}
	if !reflect.DeepEqual(result.PercentOfTotal, want) {
		t.Errorf("PercentOfTotal = %v, want %v", result.PercentOfTotal, want)
	}

	var total int
	for _, p := range result.PercentOfTotal {
		total += p
	}
	if total != 100 {
		t.Errorf("percentages sum to %d, want 100", total)
	}
}

func TestAggregate_PercentOfTotal_RoundsHalfUp(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("Food", 1, entity.TransactionTypeExpense),
		tx("Books", 7, entity.TransactionTypeExpense),
	}

	result := Aggregate(transactions, nil)

	// 1/8 = 12.5 rounds up to 13, 7/8 = 87.5 rounds up to 88.
	if result.PercentOfTotal["Food"] != 13 {
		t.Errorf("Food percent = %d, want 13", result.PercentOfTotal["Food"])
	}
	if result.PercentOfTotal["Books"] != 88 {
		t.Errorf("Books percent = %d, want 88", result.PercentOfTotal["Books"])
	}
}

func TestAggregate_PercentOfLimit(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("Food", 150, entity.TransactionTypeExpense),
		tx("Transport", 20, entity.TransactionTypeExpense),
	}
	limits := []*entity.BudgetLimit{
		limit("Food", 200),
		limit("Entertainment", 50),
	}

	result := Aggregate(transactions, limits)

	if result.PercentOfLimit["Food"] != 75 {
		t.Errorf("Food percent of limit = %d, want 75", result.PercentOfLimit["Food"])
	}
	// No limit for Transport, no spending for Entertainment: neither appears.
	if _, ok := result.PercentOfLimit["Transport"]; ok {
		t.Error("Transport should not have a percent-of-limit entry")
	}
	if _, ok := result.PercentOfLimit["Entertainment"]; ok {
		t.Error("Entertainment should not have a percent-of-limit entry")
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	result := Aggregate(nil, nil)

	if !result.TotalExpenses.IsZero() || !result.TotalIncome.IsZero() || !result.Balance.IsZero() {
		t.Errorf("expected zero totals, got %+v", result)
	}
	if len(result.ExpensesByCategory) != 0 || len(result.PercentOfTotal) != 0 || len(result.PercentOfLimit) != 0 {
		t.Errorf("expected empty maps, got %+v", result)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("Food", 40, entity.TransactionTypeExpense),
		tx("Allowance", 200, entity.TransactionTypeIncome),
	}
	limits := []*entity.BudgetLimit{limit("Food", 100)}

	first := Aggregate(transactions, limits)
	second := Aggregate(transactions, limits)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls with identical input produced different results")
	}
}

func TestOverBudget(t *testing.T) {
	transactions := []*entity.Transaction{
		tx("Food", 250, entity.TransactionTypeExpense),
		tx("Books", 85, entity.TransactionTypeExpense),
		tx("Transport", 100, entity.TransactionTypeExpense),
	}
	limits := []*entity.BudgetLimit{
		limit("Food", 200),
		limit("Books", 150),
		limit("Transport", 100), // Exactly at the limit is not over
	}

	result := Aggregate(transactions, limits)
	over := OverBudget(result, limits)

	if len(over) != 1 {
		t.Fatalf("got %d over-budget categories, want 1", len(over))
	}
	if over[0].Category != "Food" {
		t.Errorf("over-budget category = %s, want Food", over[0].Category)
	}
	if !over[0].Overspent.Equal(decimal.NewFromInt(50)) {
		t.Errorf("overspent = %s, want 50", over[0].Overspent)
	}
}
