// Package attendance contains attendance-related use cases.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// GetCalendarInput represents the input for calendar grid retrieval.
// A zero Year or Month defaults to the current one.
type GetCalendarInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetCalendarOutput represents the output of calendar grid retrieval.
type GetCalendarOutput struct {
	Year  int
	Month int
	Cells []DayCell
}

// GetCalendarUseCase handles calendar grid retrieval.
type GetCalendarUseCase struct {
	sessionRepo adapter.SessionRepository
	now         func() time.Time
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(sessionRepo adapter.SessionRepository) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *GetCalendarUseCase) WithClock(now func() time.Time) *GetCalendarUseCase {
	uc.now = now
	return uc
}

// Execute builds the month calendar grid with per-day attendance counts.
// When the input leaves the year or month unset, the month is taken from
// the use case clock so callers and tests share one time source.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	today := entity.CalendarDateOf(uc.now())

	year := input.Year
	if year == 0 {
		year = today.Year
	}
	month := input.Month
	if month == 0 {
		month = today.Month
	}

	start := entity.NewCalendarDate(year, month, 1)
	end := entity.NewCalendarDate(year, month, entity.DaysInMonth(year, month))

	sessions, err := uc.sessionRepo.FindByFilter(ctx, adapter.SessionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	cells, err := BuildMonthGrid(year, month, today, sessions)
	if err != nil {
		return nil, err
	}

	return &GetCalendarOutput{
		Year:  year,
		Month: month,
		Cells: cells,
	}, nil
}
