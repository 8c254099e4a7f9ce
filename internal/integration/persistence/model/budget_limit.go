// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studysync/backend/internal/domain/entity"
)

// BudgetLimitModel represents the budget_limits table in the database.
type BudgetLimitModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_limits_user_category"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budget_limits_user_category"`
	Limit     decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	Period    string          `gorm:"type:varchar(10);not null;default:'monthly'"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetLimitModel.
func (BudgetLimitModel) TableName() string {
	return "budget_limits"
}

// ToEntity converts a BudgetLimitModel to a domain BudgetLimit entity.
func (m *BudgetLimitModel) ToEntity() *entity.BudgetLimit {
	return &entity.BudgetLimit{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Limit:     m.Limit,
		Period:    entity.LimitPeriod(m.Period),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetLimitFromEntity creates a BudgetLimitModel from a domain BudgetLimit entity.
func BudgetLimitFromEntity(limit *entity.BudgetLimit) *BudgetLimitModel {
	return &BudgetLimitModel{
		ID:        limit.ID,
		UserID:    limit.UserID,
		Category:  limit.Category,
		Limit:     limit.Limit,
		Period:    string(limit.Period),
		CreatedAt: limit.CreatedAt,
		UpdatedAt: limit.UpdatedAt,
	}
}
