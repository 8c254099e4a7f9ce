// Package budget contains budget-tracking use cases.
package budget

import (
	"strings"

	"github.com/studysync/backend/internal/domain/entity"
)

// CategoryAll matches every category when used as the criteria category.
const CategoryAll = "all"

// TransactionCriteria defines filter options for transactions. All criteria
// are ANDed; zero values match everything.
type TransactionCriteria struct {
	StartDate *entity.CalendarDate // Inclusive
	EndDate   *entity.CalendarDate // Inclusive
	Category  string               // "all" or empty matches every category
	Type      *entity.TransactionType
	Search    string // Case-insensitive substring over category and description
}

// FilterTransactions returns the transactions matching the criteria. The
// filter is stable (input order preserved) and never mutates its input.
func FilterTransactions(transactions []*entity.Transaction, criteria TransactionCriteria) []*entity.Transaction {
	matched := make([]*entity.Transaction, 0, len(transactions))
	search := strings.ToLower(criteria.Search)

	for _, t := range transactions {
		if criteria.StartDate != nil && t.Date.Before(*criteria.StartDate) {
			continue
		}
		if criteria.EndDate != nil && t.Date.After(*criteria.EndDate) {
			continue
		}
		if criteria.Category != "" && criteria.Category != CategoryAll && t.Category != criteria.Category {
			continue
		}
		if criteria.Type != nil && t.Type != *criteria.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Category), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		matched = append(matched, t)
	}

	return matched
}
