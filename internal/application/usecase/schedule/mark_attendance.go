// Package schedule contains class-schedule use cases.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// MarkAttendanceInput represents the input for attendance marking.
type MarkAttendanceInput struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	Status    string // present, absent, late, or pending
}

// MarkAttendanceOutput represents the output of attendance marking.
type MarkAttendanceOutput struct {
	Session *entity.ClassSession
}

// MarkAttendanceUseCase handles attendance marking logic.
type MarkAttendanceUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewMarkAttendanceUseCase creates a new MarkAttendanceUseCase instance.
func NewMarkAttendanceUseCase(sessionRepo adapter.SessionRepository) *MarkAttendanceUseCase {
	return &MarkAttendanceUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute marks a session's attendance after an ownership check. Setting the
// status back to pending un-marks the session.
func (uc *MarkAttendanceUseCase) Execute(ctx context.Context, input MarkAttendanceInput) (*MarkAttendanceOutput, error) {
	status := entity.AttendanceStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidAttendanceStatus,
			"invalid attendance status",
			domainerror.ErrInvalidAttendanceStatus,
		)
	}

	session, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeSessionNotFound,
			"class session not found",
			domainerror.ErrSessionNotFound,
		)
	}

	if session.UserID != input.UserID {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeNotAuthorizedSession,
			"not authorized to modify class session",
			domainerror.ErrNotAuthorizedToModifySession,
		)
	}

	session.Attendance = status
	session.UpdatedAt = time.Now().UTC()

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return &MarkAttendanceOutput{Session: session}, nil
}
