// Package attendance contains attendance-related use cases.
package attendance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
)

// GetSubjectStatsInput represents the input for subject stats retrieval.
type GetSubjectStatsInput struct {
	UserID uuid.UUID
}

// GetSubjectStatsOutput represents the output of subject stats retrieval.
type GetSubjectStatsOutput struct {
	BySubject   map[string]SubjectStats
	OverallRate int
}

// GetSubjectStatsUseCase handles per-subject attendance stats retrieval.
type GetSubjectStatsUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewGetSubjectStatsUseCase creates a new GetSubjectStatsUseCase instance.
func NewGetSubjectStatsUseCase(sessionRepo adapter.SessionRepository) *GetSubjectStatsUseCase {
	return &GetSubjectStatsUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute computes per-subject and overall attendance rates for the user.
func (uc *GetSubjectStatsUseCase) Execute(ctx context.Context, input GetSubjectStatsInput) (*GetSubjectStatsOutput, error) {
	sessions, err := uc.sessionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	return &GetSubjectStatsOutput{
		BySubject:   RollupBySubject(sessions),
		OverallRate: OverallRate(sessions),
	}, nil
}
