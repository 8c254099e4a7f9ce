// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudyPlan represents an AI-generated study plan saved by a student.
type StudyPlan struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Focus     string // Subjects the plan concentrates on, comma separated
	Content   string // Markdown plan body returned by the AI service
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStudyPlan creates a new StudyPlan entity.
func NewStudyPlan(userID uuid.UUID, title, focus, content string) *StudyPlan {
	now := time.Now().UTC()

	return &StudyPlan{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Focus:     focus,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
