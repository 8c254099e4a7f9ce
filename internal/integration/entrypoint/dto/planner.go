// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/studysync/backend/internal/application/usecase/planner"
	"github.com/studysync/backend/internal/domain/entity"
)

// GeneratePlanRequest represents the request body for study plan generation.
type GeneratePlanRequest struct {
	Subjects      []string `json:"subjects" binding:"required,min=1"`
	HoursPerDay   int      `json:"hours_per_day" binding:"required,min=1,max=16"`
	FocusAreas    string   `json:"focus_areas"`
	UpcomingExams string   `json:"upcoming_exams"`
}

// PlanResponse represents a study plan in API responses.
type PlanResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Focus     string    `json:"focus"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanErrorResponse represents a study plan generation failure.
type PlanErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// GeneratePlanResponse represents the result of study plan generation. Exactly
// one of Plan and Error is set.
type GeneratePlanResponse struct {
	Plan  *PlanResponse      `json:"plan,omitempty"`
	Error *PlanErrorResponse `json:"error,omitempty"`
}

// PlanListResponse represents the study plan listing.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// ToPlanResponse converts a domain StudyPlan entity to a PlanResponse DTO.
func ToPlanResponse(plan *entity.StudyPlan) PlanResponse {
	return PlanResponse{
		ID:        plan.ID.String(),
		Title:     plan.Title,
		Focus:     plan.Focus,
		Content:   plan.Content,
		CreatedAt: plan.CreatedAt,
	}
}

// ToPlanErrorResponse converts a generation error to its DTO.
func ToPlanErrorResponse(genErr *planner.GenerationError) *PlanErrorResponse {
	if genErr == nil {
		return nil
	}
	return &PlanErrorResponse{
		Code:      string(genErr.Code),
		Message:   genErr.Message,
		Retryable: genErr.Retryable,
		Timestamp: genErr.Timestamp,
	}
}
