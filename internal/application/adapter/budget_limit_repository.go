// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/domain/entity"
)

// BudgetLimitRepository defines the interface for budget limit persistence operations.
type BudgetLimitRepository interface {
	// Upsert creates the limit for (user, category) or replaces its amount and period.
	Upsert(ctx context.Context, limit *entity.BudgetLimit) error

	// FindByUser retrieves all budget limits for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetLimit, error)

	// FindByUserAndCategory retrieves the limit for a specific category.
	FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.BudgetLimit, error)

	// Delete removes a budget limit from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
