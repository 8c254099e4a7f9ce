// Package attendance contains attendance-related use cases.
package attendance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// ListRecordsInput represents the input for attendance record listing.
type ListRecordsInput struct {
	UserID    uuid.UUID
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
	Subject   string
	Search    string
}

// ListRecordsOutput represents the output of attendance record listing.
type ListRecordsOutput struct {
	Sessions []*entity.ClassSession
}

// ListRecordsUseCase handles attendance record listing logic.
type ListRecordsUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(sessionRepo adapter.SessionRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists the user's sessions filtered by date range, subject, and
// search text. The repository narrows by user and date range; the remaining
// criteria go through FilterSessions so matching rules stay in one place.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	criteria := SessionCriteria{
		Subject: input.Subject,
		Search:  input.Search,
	}

	if input.StartDate != nil {
		start, err := entity.ParseCalendarDate(*input.StartDate)
		if err != nil {
			return nil, domainerror.NewAttendanceError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid start date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		criteria.StartDate = &start
	}

	if input.EndDate != nil {
		end, err := entity.ParseCalendarDate(*input.EndDate)
		if err != nil {
			return nil, domainerror.NewAttendanceError(
				domainerror.ErrCodeInvalidDateFormat,
				"invalid end date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		criteria.EndDate = &end
	}

	if criteria.StartDate != nil && criteria.EndDate != nil && criteria.EndDate.Before(*criteria.StartDate) {
		return nil, domainerror.NewAttendanceError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	sessions, err := uc.sessionRepo.FindByFilter(ctx, adapter.SessionFilter{
		UserID:    input.UserID,
		StartDate: criteria.StartDate,
		EndDate:   criteria.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return &ListRecordsOutput{Sessions: FilterSessions(sessions, criteria)}, nil
}
