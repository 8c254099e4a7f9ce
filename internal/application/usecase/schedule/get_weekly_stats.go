// Package schedule contains class-schedule use cases.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// GetWeeklyStatsInput represents the input for weekly stats retrieval.
type GetWeeklyStatsInput struct {
	UserID uuid.UUID
}

// GetWeeklyStatsOutput represents the output of weekly stats retrieval.
type GetWeeklyStatsOutput struct {
	Stats    entity.ScheduleStats
	Upcoming []UpcomingEntry
}

// GetWeeklyStatsUseCase handles weekly stats and upcoming-class retrieval.
type GetWeeklyStatsUseCase struct {
	sessionRepo adapter.SessionRepository
	now         func() time.Time
}

// NewGetWeeklyStatsUseCase creates a new GetWeeklyStatsUseCase instance.
func NewGetWeeklyStatsUseCase(sessionRepo adapter.SessionRepository) *GetWeeklyStatsUseCase {
	return &GetWeeklyStatsUseCase{
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *GetWeeklyStatsUseCase) WithClock(now func() time.Time) *GetWeeklyStatsUseCase {
	uc.now = now
	return uc
}

// Execute computes the user's weekly stats and upcoming classes.
func (uc *GetWeeklyStatsUseCase) Execute(ctx context.Context, input GetWeeklyStatsInput) (*GetWeeklyStatsOutput, error) {
	schedule, err := uc.sessionRepo.FindWeeklySchedule(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly schedule: %w", err)
	}

	now := uc.now()
	clock := ClockInfo{
		Date:      entity.CalendarDateOf(now),
		DayOfWeek: entity.Weekday(now.Weekday()),
		Time:      entity.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()},
	}

	return &GetWeeklyStatsOutput{
		Stats:    WeeklyStats(schedule, clock),
		Upcoming: UpcomingClasses(schedule, clock, DefaultHorizonDays, DefaultUpcomingLimit),
	}, nil
}
