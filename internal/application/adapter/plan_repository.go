// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/domain/entity"
)

// PlanRepository defines the interface for study plan persistence operations.
type PlanRepository interface {
	// Create saves a generated study plan.
	Create(ctx context.Context, plan *entity.StudyPlan) error

	// FindByID retrieves a study plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StudyPlan, error)

	// FindByUser retrieves all study plans for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StudyPlan, error)

	// Delete removes a study plan from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
