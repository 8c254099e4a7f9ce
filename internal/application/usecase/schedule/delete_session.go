// Package schedule contains class-schedule use cases.
package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// DeleteSessionInput represents the input for class session deletion.
type DeleteSessionInput struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
}

// DeleteSessionOutput represents the output of class session deletion.
type DeleteSessionOutput struct {
	Message string
}

// DeleteSessionUseCase handles class session deletion logic.
type DeleteSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewDeleteSessionUseCase creates a new DeleteSessionUseCase instance.
func NewDeleteSessionUseCase(sessionRepo adapter.SessionRepository) *DeleteSessionUseCase {
	return &DeleteSessionUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute performs the class session deletion after an ownership check.
func (uc *DeleteSessionUseCase) Execute(ctx context.Context, input DeleteSessionInput) (*DeleteSessionOutput, error) {
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

	if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to delete class session: %w", err)
	}

	return &DeleteSessionOutput{Message: "Class session deleted"}, nil
}
