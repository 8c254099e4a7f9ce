// Package budget contains budget-tracking use cases.
package budget

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/domain/entity"
)

func datedTx(category, description string, date entity.CalendarDate, txType entity.TransactionType) *entity.Transaction {
	return &entity.Transaction{
		Category:    category,
		Description: description,
		Date:        date,
		Amount:      decimal.NewFromInt(10),
		Type:        txType,
	}
}

func TestFilterTransactions(t *testing.T) {
	expense := entity.TransactionTypeExpense
	transactions := []*entity.Transaction{
		datedTx("Food", "Lunch with friends", entity.NewCalendarDate(2023, 10, 14), entity.TransactionTypeExpense),
		datedTx("Books", "Textbook for Physics class", entity.NewCalendarDate(2023, 10, 12), entity.TransactionTypeExpense),
		datedTx("Allowance", "Monthly allowance", entity.NewCalendarDate(2023, 10, 15), entity.TransactionTypeIncome),
		datedTx("Food", "Coffee", entity.NewCalendarDate(2023, 10, 5), entity.TransactionTypeExpense),
	}

	start := entity.NewCalendarDate(2023, 10, 10)
	end := entity.NewCalendarDate(2023, 10, 15)

	tests := []struct {
		name     string
		criteria TransactionCriteria
		want     []int
	}{
		{"no criteria", TransactionCriteria{}, []int{0, 1, 2, 3}},
		{"category all", TransactionCriteria{Category: CategoryAll}, []int{0, 1, 2, 3}},
		{"category", TransactionCriteria{Category: "Food"}, []int{0, 3}},
		{"date range inclusive", TransactionCriteria{StartDate: &start, EndDate: &end}, []int{0, 1, 2}},
		{"type", TransactionCriteria{Type: &expense}, []int{0, 1, 3}},
		{"search over description", TransactionCriteria{Search: "physics"}, []int{1}},
		{"search over category", TransactionCriteria{Search: "allow"}, []int{2}},
		{"combined", TransactionCriteria{Category: "Food", StartDate: &start, EndDate: &end}, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make([]*entity.Transaction, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, transactions[i])
			}

			got := FilterTransactions(transactions, tt.criteria)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("FilterTransactions() returned %d, want %d (order-sensitive)", len(got), len(want))
			}
		})
	}
}

func TestFilterTransactions_SearchIsLiteral(t *testing.T) {
	transactions := []*entity.Transaction{
		datedTx("Books", "Textbook 50% off", entity.NewCalendarDate(2023, 10, 12), entity.TransactionTypeExpense),
		datedTx("Food", "Lunch", entity.NewCalendarDate(2023, 10, 14), entity.TransactionTypeExpense),
	}

	// SQL LIKE wildcards are ordinary characters here.
	got := FilterTransactions(transactions, TransactionCriteria{Search: "%"})
	if len(got) != 1 || got[0] != transactions[0] {
		t.Errorf("FilterTransactions(search=%%) returned %d transactions, want the discounted textbook only", len(got))
	}

	if got := FilterTransactions(transactions, TransactionCriteria{Search: "_"}); len(got) != 0 {
		t.Errorf("FilterTransactions(search=_) returned %d transactions, want none", len(got))
	}
}

func TestFilterTransactions_FullSpanRoundTrip(t *testing.T) {
	transactions := []*entity.Transaction{
		datedTx("Food", "a", entity.NewCalendarDate(2023, 1, 1), entity.TransactionTypeExpense),
		datedTx("Books", "b", entity.NewCalendarDate(2023, 6, 15), entity.TransactionTypeExpense),
		datedTx("Rent", "c", entity.NewCalendarDate(2023, 12, 31), entity.TransactionTypeExpense),
	}
	start := entity.NewCalendarDate(2023, 1, 1)
	end := entity.NewCalendarDate(2023, 12, 31)

	got := FilterTransactions(transactions, TransactionCriteria{
		Category:  CategoryAll,
		Search:    "",
		StartDate: &start,
		EndDate:   &end,
	})

	if !reflect.DeepEqual(got, transactions) {
		t.Error("full-span filter should return the original list unchanged")
	}
}
