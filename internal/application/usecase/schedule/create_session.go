// Package schedule contains class-schedule use cases.
package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// CreateSessionInput represents the input for class session creation.
type CreateSessionInput struct {
	UserID       uuid.UUID
	Subject      string
	Room         string
	DayOfWeek    string  // Lowercase weekday key, e.g. "monday"
	Date         *string // Optional concrete day, YYYY-MM-DD
	StartTime    string  // HH:MM
	EndTime      string  // HH:MM
	Color        string
	NotifyBefore int
}

// CreateSessionOutput represents the output of class session creation.
type CreateSessionOutput struct {
	Session *entity.ClassSession
}

// CreateSessionUseCase handles class session creation logic.
type CreateSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewCreateSessionUseCase creates a new CreateSessionUseCase instance.
func NewCreateSessionUseCase(sessionRepo adapter.SessionRepository) *CreateSessionUseCase {
	return &CreateSessionUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute performs the class session creation.
func (uc *CreateSessionUseCase) Execute(ctx context.Context, input CreateSessionInput) (*CreateSessionOutput, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeEmptySubject,
			"subject cannot be empty",
			domainerror.ErrEmptySubject,
		)
	}

	dayOfWeek, err := entity.ParseWeekday(input.DayOfWeek)
	if err != nil {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidWeekday,
			"invalid day of week",
			domainerror.ErrInvalidWeekday,
		)
	}

	startTime, endTime, err := parseTimeRange(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	var date *entity.CalendarDate
	if input.Date != nil {
		parsed, err := entity.ParseCalendarDate(*input.Date)
		if err != nil {
			return nil, domainerror.NewAttendanceError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		date = &parsed
	}

	session := entity.NewClassSession(
		input.UserID,
		strings.TrimSpace(input.Subject),
		strings.TrimSpace(input.Room),
		dayOfWeek,
		date,
		startTime,
		endTime,
		input.Color,
		input.NotifyBefore,
	)

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create class session: %w", err)
	}

	return &CreateSessionOutput{Session: session}, nil
}

// parseTimeRange parses and validates a start/end time pair.
func parseTimeRange(start, end string) (entity.TimeOfDay, entity.TimeOfDay, error) {
	var zero entity.TimeOfDay

	startTime, err := entity.ParseTimeOfDay(start)
	if err != nil {
		return zero, zero, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidTimeFormat,
			"invalid start time format, expected HH:MM",
			domainerror.ErrInvalidTimeFormat,
		)
	}

	endTime, err := entity.ParseTimeOfDay(end)
	if err != nil {
		return zero, zero, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidTimeFormat,
			"invalid end time format, expected HH:MM",
			domainerror.ErrInvalidTimeFormat,
		)
	}

	if !endTime.After(startTime) {
		return zero, zero, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidTimeRange,
			"end time must be after start time",
			domainerror.ErrInvalidTimeRange,
		)
	}

	return startTime, endTime, nil
}
