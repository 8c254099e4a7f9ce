// Package attendance contains attendance-related use cases.
package attendance

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
)

// fakeSessionRepo returns a fixed session list and records the filter it
// was asked for.
type fakeSessionRepo struct {
	sessions  []*entity.ClassSession
	gotFilter adapter.SessionFilter
	err       error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.ClassSession) error {
	return f.err
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassSession, error) {
	return nil, f.err
}

func (f *fakeSessionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ClassSession, error) {
	return f.sessions, f.err
}

func (f *fakeSessionRepo) FindByFilter(ctx context.Context, filter adapter.SessionFilter) ([]*entity.ClassSession, error) {
	f.gotFilter = filter
	return f.sessions, f.err
}

func (f *fakeSessionRepo) FindWeeklySchedule(ctx context.Context, userID uuid.UUID) (entity.WeeklySchedule, error) {
	return nil, f.err
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *entity.ClassSession) error {
	return f.err
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

func TestListRecordsUseCase_SearchIsLiteral(t *testing.T) {
	repo := &fakeSessionRepo{sessions: []*entity.ClassSession{
		roomSession("Mathematics", "Lab 100%", datePtr(2025, 3, 3)),
		roomSession("Physics", "Room 405", datePtr(2025, 3, 4)),
	}}
	uc := NewListRecordsUseCase(repo)

	output, err := uc.Execute(context.Background(), ListRecordsInput{
		UserID: uuid.New(),
		Search: "%",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Sessions) != 1 || output.Sessions[0].Room != "Lab 100%" {
		t.Fatalf("search %% matched %d sessions, want only the room containing a literal percent sign", len(output.Sessions))
	}
}

func TestListRecordsUseCase_SubjectAndSearchCriteria(t *testing.T) {
	repo := &fakeSessionRepo{sessions: []*entity.ClassSession{
		roomSession("Mathematics", "Room 302", datePtr(2025, 3, 3)),
		roomSession("Databases", "Lab 101", datePtr(2025, 3, 4)),
	}}
	uc := NewListRecordsUseCase(repo)

	output, err := uc.Execute(context.Background(), ListRecordsInput{
		UserID:  uuid.New(),
		Subject: "Databases",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Sessions) != 1 || output.Sessions[0].Subject != "Databases" {
		t.Fatalf("subject filter matched %d sessions, want 1", len(output.Sessions))
	}

	output, err = uc.Execute(context.Background(), ListRecordsInput{
		UserID: uuid.New(),
		Search: "LAB",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Sessions) != 1 || output.Sessions[0].Room != "Lab 101" {
		t.Fatalf("search matched %d sessions, want the lab room only", len(output.Sessions))
	}
}

func TestListRecordsUseCase_DateRangePushedToRepository(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := NewListRecordsUseCase(repo)

	start := "2025-03-01"
	end := "2025-03-10"
	_, err := uc.Execute(context.Background(), ListRecordsInput{
		UserID:    uuid.New(),
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.gotFilter.StartDate == nil || !repo.gotFilter.StartDate.Equal(entity.NewCalendarDate(2025, 3, 1)) {
		t.Errorf("repository start date = %v, want 2025-03-01", repo.gotFilter.StartDate)
	}
	if repo.gotFilter.EndDate == nil || !repo.gotFilter.EndDate.Equal(entity.NewCalendarDate(2025, 3, 10)) {
		t.Errorf("repository end date = %v, want 2025-03-10", repo.gotFilter.EndDate)
	}
}

func TestListRecordsUseCase_RejectsInvertedRange(t *testing.T) {
	uc := NewListRecordsUseCase(&fakeSessionRepo{})

	start := "2025-03-10"
	end := "2025-03-01"
	_, err := uc.Execute(context.Background(), ListRecordsInput{
		UserID:    uuid.New(),
		StartDate: &start,
		EndDate:   &end,
	})
	if err == nil {
		t.Fatal("expected an error for an inverted date range")
	}
}
