// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LimitPeriod represents the period type for a budget limit.
type LimitPeriod string

const (
	LimitPeriodWeekly  LimitPeriod = "weekly"
	LimitPeriodMonthly LimitPeriod = "monthly"
	LimitPeriodYearly  LimitPeriod = "yearly"
)

// IsValid reports whether the period is one of the known values.
func (p LimitPeriod) IsValid() bool {
	return p == LimitPeriodWeekly || p == LimitPeriodMonthly || p == LimitPeriodYearly
}

// BudgetLimit represents a per-category spending cap in the StudySync system.
type BudgetLimit struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	Period    LimitPeriod
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudgetLimit creates a new BudgetLimit entity.
func NewBudgetLimit(userID uuid.UUID, category string, limit decimal.Decimal, period LimitPeriod) *BudgetLimit {
	now := time.Now().UTC()

	return &BudgetLimit{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OverBudgetCategory represents a category whose spending exceeds its limit.
type OverBudgetCategory struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Overspent decimal.Decimal
}
