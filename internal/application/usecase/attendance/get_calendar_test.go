// Package attendance contains attendance-related use cases.
package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/domain/entity"
)

func TestGetCalendarUseCase_DefaultsToClockMonth(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := NewGetCalendarUseCase(repo).WithClock(func() time.Time {
		return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	})

	output, err := uc.Execute(context.Background(), GetCalendarInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Year != 2025 || output.Month != 3 {
		t.Errorf("defaulted to %d-%d, want 2025-3", output.Year, output.Month)
	}
	if repo.gotFilter.StartDate == nil || !repo.gotFilter.StartDate.Equal(entity.NewCalendarDate(2025, 3, 1)) {
		t.Errorf("repository start date = %v, want 2025-03-01", repo.gotFilter.StartDate)
	}
	if repo.gotFilter.EndDate == nil || !repo.gotFilter.EndDate.Equal(entity.NewCalendarDate(2025, 3, 31)) {
		t.Errorf("repository end date = %v, want 2025-03-31", repo.gotFilter.EndDate)
	}
}

func TestGetCalendarUseCase_ExplicitMonthWinsOverClock(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := NewGetCalendarUseCase(repo).WithClock(func() time.Time {
		return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	})

	output, err := uc.Execute(context.Background(), GetCalendarInput{
		UserID: uuid.New(),
		Year:   2024,
		Month:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Year != 2024 || output.Month != 2 {
		t.Errorf("got %d-%d, want 2024-2", output.Year, output.Month)
	}
	// 2024 is a leap year.
	if repo.gotFilter.EndDate == nil || !repo.gotFilter.EndDate.Equal(entity.NewCalendarDate(2024, 2, 29)) {
		t.Errorf("repository end date = %v, want 2024-02-29", repo.gotFilter.EndDate)
	}
}
