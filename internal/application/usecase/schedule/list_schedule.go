// Package schedule contains class-schedule use cases.
package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// ListScheduleInput represents the input for listing the weekly schedule.
type ListScheduleInput struct {
	UserID uuid.UUID
}

// ListScheduleOutput represents the output of listing the weekly schedule.
type ListScheduleOutput struct {
	Schedule entity.WeeklySchedule
}

// ListScheduleUseCase handles weekly schedule listing logic.
type ListScheduleUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListScheduleUseCase creates a new ListScheduleUseCase instance.
func NewListScheduleUseCase(sessionRepo adapter.SessionRepository) *ListScheduleUseCase {
	return &ListScheduleUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute retrieves the user's sessions grouped by weekday.
func (uc *ListScheduleUseCase) Execute(ctx context.Context, input ListScheduleInput) (*ListScheduleOutput, error) {
	schedule, err := uc.sessionRepo.FindWeeklySchedule(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}

	return &ListScheduleOutput{Schedule: schedule}, nil
}
