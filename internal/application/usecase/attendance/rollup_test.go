// Package attendance contains attendance-related use cases.
package attendance

import (
	"testing"

	"github.com/studysync/backend/internal/domain/entity"
)

func marked(subject string, status entity.AttendanceStatus) *entity.ClassSession {
	return &entity.ClassSession{Subject: subject, Attendance: status}
}

func TestOverallRate(t *testing.T) {
	tests := []struct {
		name     string
		sessions []*entity.ClassSession
		want     int
	}{
		{
			name: "pending excluded from denominator",
			sessions: []*entity.ClassSession{
				marked("Mathematics", entity.AttendancePresent),
				marked("Physics", entity.AttendancePresent),
				marked("Chemistry", entity.AttendanceAbsent),
				marked("English", entity.AttendancePending),
			},
			want: 67, // 2 of 3 marked, rounded half up
		},
		{
			name: "late excluded from denominator",
			sessions: []*entity.ClassSession{
				marked("Mathematics", entity.AttendancePresent),
				marked("Physics", entity.AttendanceLate),
			},
			want: 100,
		},
		{
			name:     "empty input",
			sessions: nil,
			want:     0,
		},
		{
			name: "nothing marked",
			sessions: []*entity.ClassSession{
				marked("Mathematics", entity.AttendancePending),
				marked("Physics", entity.AttendanceLate),
			},
			want: 0,
		},
		{
			name: "all absent",
			sessions: []*entity.ClassSession{
				marked("Mathematics", entity.AttendanceAbsent),
				marked("Physics", entity.AttendanceAbsent),
			},
			want: 0,
		},
		{
			name: "half rounds up",
			sessions: []*entity.ClassSession{
				marked("Mathematics", entity.AttendancePresent),
				marked("Mathematics", entity.AttendanceAbsent),
				marked("Mathematics", entity.AttendanceAbsent),
				marked("Mathematics", entity.AttendanceAbsent),
				marked("Mathematics", entity.AttendanceAbsent),
				marked("Mathematics", entity.AttendanceAbsent),
				marked("Mathematics", entity.AttendanceAbsent),
				marked("Mathematics", entity.AttendanceAbsent),
			},
			want: 13, // 12.5 rounds up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallRate(tt.sessions); got != tt.want {
				t.Errorf("OverallRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRollupBySubject(t *testing.T) {
	sessions := []*entity.ClassSession{
		marked("Mathematics", entity.AttendancePresent),
		marked("Mathematics", entity.AttendancePresent),
		marked("Mathematics", entity.AttendanceAbsent),
		marked("Physics", entity.AttendanceAbsent),
		marked("Physics", entity.AttendancePending),
		marked("Chemistry", entity.AttendancePending),
	}

	stats := RollupBySubject(sessions)

	math, ok := stats["Mathematics"]
	if !ok {
		t.Fatal("missing Mathematics stats")
	}
	if math.Present != 2 || math.Total != 3 || math.Percentage != 67 {
		t.Errorf("Mathematics = %+v, want 2/3 at 67%%", math)
	}

	physics, ok := stats["Physics"]
	if !ok {
		t.Fatal("missing Physics stats")
	}
	if physics.Present != 0 || physics.Total != 1 || physics.Percentage != 0 {
		t.Errorf("Physics = %+v, want 0/1 at 0%%", physics)
	}

	// Chemistry has nothing marked, so it never appears.
	if _, ok := stats["Chemistry"]; ok {
		t.Error("Chemistry should not appear with only pending sessions")
	}
}

func TestOverallRate_NotAverageOfSubjects(t *testing.T) {
	// 9/10 in Mathematics, 0/1 in Physics: the global rate is 9/11 = 82%,
	// not the 45% a subject-percentage average would give.
	sessions := make([]*entity.ClassSession, 0, 11)
	for i := 0; i < 9; i++ {
		sessions = append(sessions, marked("Mathematics", entity.AttendancePresent))
	}
	sessions = append(sessions,
		marked("Mathematics", entity.AttendanceAbsent),
		marked("Physics", entity.AttendanceAbsent),
	)

	if got := OverallRate(sessions); got != 82 {
		t.Errorf("OverallRate() = %d, want 82", got)
	}
}
