// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/persistence/model"
)

// budgetLimitRepository implements the adapter.BudgetLimitRepository interface.
type budgetLimitRepository struct {
	db *gorm.DB
}

// NewBudgetLimitRepository creates a new budget limit repository instance.
func NewBudgetLimitRepository(db *gorm.DB) adapter.BudgetLimitRepository {
	return &budgetLimitRepository{
		db: db,
	}
}

// Upsert creates the limit for (user, category) or replaces its amount and period.
func (r *budgetLimitRepository) Upsert(ctx context.Context, limit *entity.BudgetLimit) error {
	limitModel := model.BudgetLimitFromEntity(limit)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "period", "updated_at"}),
		}).
		Create(limitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all budget limits for a given user.
func (r *budgetLimitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetLimit, error) {
	var limitModels []model.BudgetLimitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&limitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	limits := make([]*entity.BudgetLimit, len(limitModels))
	for i, lm := range limitModels {
		limits[i] = lm.ToEntity()
	}
	return limits, nil
}

// FindByUserAndCategory retrieves the limit for a specific category.
func (r *budgetLimitRepository) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.BudgetLimit, error) {
	var limitModel model.BudgetLimitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&limitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLimitNotFound
		}
		return nil, result.Error
	}
	return limitModel.ToEntity(), nil
}

// Delete removes a budget limit from the database.
func (r *budgetLimitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetLimitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
