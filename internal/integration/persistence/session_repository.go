// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/persistence/model"
)

// sessionRepository implements the adapter.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new class session repository instance.
func NewSessionRepository(db *gorm.DB) adapter.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create creates a new class session in the database.
func (r *sessionRepository) Create(ctx context.Context, session *entity.ClassSession) error {
	sessionModel := model.ClassSessionFromEntity(session)
	result := r.db.WithContext(ctx).Create(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a class session by its ID.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error) {
	var sessionModel model.ClassSessionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sessionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, result.Error
	}
	return sessionModel.ToEntity(), nil
}

// FindByUser retrieves all class sessions for a given user.
func (r *sessionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ClassSession, error) {
	var sessionModels []model.ClassSessionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_of_week ASC, start_time ASC").
		Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sessions := make([]*entity.ClassSession, len(sessionModels))
	for i, sm := range sessionModels {
		sessions[i] = sm.ToEntity()
	}
	return sessions, nil
}

// FindByFilter retrieves class sessions matching the filter criteria.
func (r *sessionRepository) FindByFilter(ctx context.Context, filter adapter.SessionFilter) ([]*entity.ClassSession, error) {
	query := r.db.WithContext(ctx).Model(&model.ClassSessionModel{})

	query = query.Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.Time())
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate.Time())
	}

	var sessionModels []model.ClassSessionModel
	result := query.Order("date ASC, start_time ASC").Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sessions := make([]*entity.ClassSession, len(sessionModels))
	for i, sm := range sessionModels {
		sessions[i] = sm.ToEntity()
	}
	return sessions, nil
}

// FindWeeklySchedule retrieves the user's sessions grouped by weekday,
// ordered by start time within each day.
func (r *sessionRepository) FindWeeklySchedule(ctx context.Context, userID uuid.UUID) (entity.WeeklySchedule, error) {
	var sessionModels []model.ClassSessionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_of_week ASC, start_time ASC").
		Find(&sessionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	schedule := make(entity.WeeklySchedule)
	for _, sm := range sessionModels {
		session := sm.ToEntity()
		schedule[session.DayOfWeek] = append(schedule[session.DayOfWeek], session)
	}
	return schedule, nil
}

// Update updates an existing class session in the database.
func (r *sessionRepository) Update(ctx context.Context, session *entity.ClassSession) error {
	sessionModel := model.ClassSessionFromEntity(session)
	result := r.db.WithContext(ctx).Save(sessionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a class session from the database.
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ClassSessionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
