// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// StudyPlanRequest represents a request to generate a study plan.
type StudyPlanRequest struct {
	Subjects      []string
	HoursPerDay   int
	FocusAreas    string // Free-text areas the student wants to prioritize
	UpcomingExams string // Free-text exam dates and topics
}

// StudyPlanResult represents the AI-generated plan.
type StudyPlanResult struct {
	Title   string
	Content string // Markdown plan body
}

// StudyPlannerService defines the interface for AI study plan generation.
type StudyPlannerService interface {
	// GeneratePlan produces a study plan for the given subjects and constraints.
	GeneratePlan(ctx context.Context, request *StudyPlanRequest) (*StudyPlanResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
