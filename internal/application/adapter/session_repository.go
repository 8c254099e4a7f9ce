// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/domain/entity"
)

// SessionFilter narrows a session listing to a user and an optional date
// range. Subject and search criteria are applied by the use case layer so
// their matching rules live in one place.
type SessionFilter struct {
	UserID    uuid.UUID
	StartDate *entity.CalendarDate
	EndDate   *entity.CalendarDate
}

// SessionRepository defines the interface for class session persistence operations.
type SessionRepository interface {
	// Create creates a new class session in the database.
	Create(ctx context.Context, session *entity.ClassSession) error

	// FindByID retrieves a class session by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error)

	// FindByUser retrieves all class sessions for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ClassSession, error)

	// FindByFilter retrieves class sessions matching the filter criteria.
	FindByFilter(ctx context.Context, filter SessionFilter) ([]*entity.ClassSession, error)

	// FindWeeklySchedule retrieves the user's sessions grouped by weekday,
	// ordered by start time within each day.
	FindWeeklySchedule(ctx context.Context, userID uuid.UUID) (entity.WeeklySchedule, error)

	// Update updates an existing class session in the database.
	Update(ctx context.Context, session *entity.ClassSession) error

	// Delete soft-deletes a class session from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
