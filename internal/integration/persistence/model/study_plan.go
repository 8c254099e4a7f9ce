// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/domain/entity"
)

// StudyPlanModel represents the study_plans table in the database.
type StudyPlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Focus     string    `gorm:"type:varchar(500)"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the StudyPlanModel.
func (StudyPlanModel) TableName() string {
	return "study_plans"
}

// ToEntity converts a StudyPlanModel to a domain StudyPlan entity.
func (m *StudyPlanModel) ToEntity() *entity.StudyPlan {
	return &entity.StudyPlan{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Focus:     m.Focus,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// StudyPlanFromEntity creates a StudyPlanModel from a domain StudyPlan entity.
func StudyPlanFromEntity(plan *entity.StudyPlan) *StudyPlanModel {
	return &StudyPlanModel{
		ID:        plan.ID,
		UserID:    plan.UserID,
		Title:     plan.Title,
		Focus:     plan.Focus,
		Content:   plan.Content,
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}
