// Package schedule contains class-schedule use cases.
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// UpdateSessionInput represents the input for class session update.
// Nil fields are left unchanged.
type UpdateSessionInput struct {
	SessionID    uuid.UUID
	UserID       uuid.UUID
	Subject      *string
	Room         *string
	DayOfWeek    *string
	Date         *string
	StartTime    *string
	EndTime      *string
	Color        *string
	NotifyBefore *int
}

// UpdateSessionOutput represents the output of class session update.
type UpdateSessionOutput struct {
	Session *entity.ClassSession
}

// UpdateSessionUseCase handles class session update logic.
type UpdateSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewUpdateSessionUseCase creates a new UpdateSessionUseCase instance.
func NewUpdateSessionUseCase(sessionRepo adapter.SessionRepository) *UpdateSessionUseCase {
	return &UpdateSessionUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute performs the class session update after an ownership check.
func (uc *UpdateSessionUseCase) Execute(ctx context.Context, input UpdateSessionInput) (*UpdateSessionOutput, error) {
	session, err := uc.findOwnedSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Subject != nil {
		if strings.TrimSpace(*input.Subject) == "" {
			return nil, domainerror.NewScheduleError(
				domainerror.ErrCodeEmptySubject,
				"subject cannot be empty",
				domainerror.ErrEmptySubject,
			)
		}
		session.Subject = strings.TrimSpace(*input.Subject)
	}

	if input.Room != nil {
		session.Room = strings.TrimSpace(*input.Room)
	}

	if input.DayOfWeek != nil {
		dayOfWeek, err := entity.ParseWeekday(*input.DayOfWeek)
		if err != nil {
			return nil, domainerror.NewScheduleError(
				domainerror.ErrCodeInvalidWeekday,
				"invalid day of week",
				domainerror.ErrInvalidWeekday,
			)
		}
		session.DayOfWeek = dayOfWeek
	}

	if input.Date != nil {
		if *input.Date == "" {
			session.Date = nil
		} else {
			parsed, err := entity.ParseCalendarDate(*input.Date)
			if err != nil {
				return nil, domainerror.NewAttendanceError(
					domainerror.ErrCodeInvalidDateFormat,
					"invalid date format, expected YYYY-MM-DD",
					domainerror.ErrInvalidDateFormat,
				)
			}
			session.Date = &parsed
		}
	}

	if input.StartTime != nil || input.EndTime != nil {
		start := session.StartTime.String()
		if input.StartTime != nil {
			start = *input.StartTime
		}
		end := session.EndTime.String()
		if input.EndTime != nil {
			end = *input.EndTime
		}
		startTime, endTime, err := parseTimeRange(start, end)
		if err != nil {
			return nil, err
		}
		session.StartTime = startTime
		session.EndTime = endTime
	}

	if input.Color != nil {
		session.Color = *input.Color
	}

	if input.NotifyBefore != nil {
		session.NotifyBefore = *input.NotifyBefore
	}

	session.UpdatedAt = time.Now().UTC()

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update class session: %w", err)
	}

	return &UpdateSessionOutput{Session: session}, nil
}

// findOwnedSession loads a session and verifies the user owns it.
func (uc *UpdateSessionUseCase) findOwnedSession(ctx context.Context, sessionID, userID uuid.UUID) (*entity.ClassSession, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeSessionNotFound,
			"class session not found",
			domainerror.ErrSessionNotFound,
		)
	}

	if session.UserID != userID {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeNotAuthorizedSession,
			"not authorized to modify class session",
			domainerror.ErrNotAuthorizedToModifySession,
		)
	}

	return session, nil
}
