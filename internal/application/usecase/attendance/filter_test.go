// Package attendance contains attendance-related use cases.
package attendance

import (
	"reflect"
	"testing"

	"github.com/studysync/backend/internal/domain/entity"
)

func datePtr(y, m, d int) *entity.CalendarDate {
	date := entity.NewCalendarDate(y, m, d)
	return &date
}

func roomSession(subject, room string, date *entity.CalendarDate) *entity.ClassSession {
	return &entity.ClassSession{
		Subject:    subject,
		Room:       room,
		Date:       date,
		Attendance: entity.AttendancePending,
	}
}

func TestFilterSessions(t *testing.T) {
	sessions := []*entity.ClassSession{
		roomSession("Mathematics", "Room 302", datePtr(2023, 10, 10)),
		roomSession("Physics", "Room 405", datePtr(2023, 10, 10)),
		roomSession("Computer Science", "Lab 101", datePtr(2023, 10, 11)),
		roomSession("Mathematics", "Room 302", datePtr(2023, 10, 12)),
		roomSession("English", "Room 201", nil),
	}

	tests := []struct {
		name     string
		criteria SessionCriteria
		want     []int // Indices into sessions, in order
	}{
		{
			name:     "no criteria matches everything in order",
			criteria: SessionCriteria{},
			want:     []int{0, 1, 2, 3, 4},
		},
		{
			name:     "subject all matches everything",
			criteria: SessionCriteria{Subject: SubjectAll},
			want:     []int{0, 1, 2, 3, 4},
		},
		{
			name:     "subject match",
			criteria: SessionCriteria{Subject: "Mathematics"},
			want:     []int{0, 3},
		},
		{
			name:     "date range inclusive on both ends",
			criteria: SessionCriteria{StartDate: datePtr(2023, 10, 10), EndDate: datePtr(2023, 10, 11)},
			want:     []int{0, 1, 2},
		},
		{
			name:     "date range excludes undated sessions",
			criteria: SessionCriteria{StartDate: datePtr(2023, 1, 1), EndDate: datePtr(2023, 12, 31)},
			want:     []int{0, 1, 2, 3},
		},
		{
			name:     "search matches room case-insensitively",
			criteria: SessionCriteria{Search: "lab"},
			want:     []int{2},
		},
		{
			name:     "search matches subject substring",
			criteria: SessionCriteria{Search: "math"},
			want:     []int{0, 3},
		},
		{
			name:     "criteria are ANDed",
			criteria: SessionCriteria{Subject: "Mathematics", StartDate: datePtr(2023, 10, 11), EndDate: datePtr(2023, 10, 12)},
			want:     []int{3},
		},
		{
			name:     "no match",
			criteria: SessionCriteria{Subject: "Biology"},
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make([]*entity.ClassSession, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, sessions[i])
			}

			got := FilterSessions(sessions, tt.criteria)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("FilterSessions() returned %d sessions, want %d (order-sensitive)", len(got), len(want))
			}
		})
	}
}

func TestFilterSessions_SearchIsLiteral(t *testing.T) {
	sessions := []*entity.ClassSession{
		roomSession("Mathematics", "Lab 100%", datePtr(2023, 10, 10)),
		roomSession("Discrete_Structures", "Room 405", datePtr(2023, 10, 11)),
		roomSession("Physics", "Room 302", datePtr(2023, 10, 12)),
	}

	tests := []struct {
		name   string
		search string
		want   []int
	}{
		// SQL LIKE wildcards are ordinary characters here.
		{"percent sign only matches itself", "%", []int{0}},
		{"underscore only matches itself", "_", []int{1}},
		{"substring containing a percent sign", "0%", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make([]*entity.ClassSession, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, sessions[i])
			}

			got := FilterSessions(sessions, SessionCriteria{Search: tt.search})
			if !reflect.DeepEqual(got, want) {
				t.Errorf("FilterSessions(search=%q) returned %d sessions, want %d", tt.search, len(got), len(want))
			}
		})
	}
}

func TestFilterSessions_DoesNotMutateInput(t *testing.T) {
	sessions := []*entity.ClassSession{
		roomSession("Mathematics", "Room 302", datePtr(2023, 10, 10)),
		roomSession("Physics", "Room 405", datePtr(2023, 10, 11)),
	}
	snapshot := make([]*entity.ClassSession, len(sessions))
	copy(snapshot, sessions)

	FilterSessions(sessions, SessionCriteria{Subject: "Physics"})

	for i := range sessions {
		if sessions[i] != snapshot[i] {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}
