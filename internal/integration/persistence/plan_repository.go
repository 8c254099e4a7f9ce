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

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new study plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// Create saves a generated study plan.
func (r *planRepository) Create(ctx context.Context, plan *entity.StudyPlan) error {
	planModel := model.StudyPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a study plan by its ID.
func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StudyPlan, error) {
	var planModel model.StudyPlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindByUser retrieves all study plans for a given user, newest first.
func (r *planRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StudyPlan, error) {
	var planModels []model.StudyPlanModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.StudyPlan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// Delete removes a study plan from the database.
func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.StudyPlanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
