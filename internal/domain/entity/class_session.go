// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus represents the attendance state of a class session.
// Sessions start as pending until the student explicitly marks them.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendancePending AttendanceStatus = "pending"
)

// IsValid reports whether the status is one of the known values.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendancePending:
		return true
	}
	return false
}

// IsMarked reports whether the status counts toward attendance statistics.
// Only explicit present/absent marks enter the denominator; late and pending
// sessions are excluded from both numerator and denominator.
func (s AttendanceStatus) IsMarked() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// ClassSession represents a scheduled class occurrence in the StudySync system.
type ClassSession struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Subject      string
	Room         string
	DayOfWeek    Weekday
	Date         *CalendarDate // Concrete calendar day, nil for recurring-only entries
	StartTime    TimeOfDay
	EndTime      TimeOfDay
	Attendance   AttendanceStatus
	Color        string
	NotifyBefore int // Minutes before start to notify, 0 disables
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewClassSession creates a new ClassSession entity with pending attendance.
func NewClassSession(
	userID uuid.UUID,
	subject string,
	room string,
	dayOfWeek Weekday,
	date *CalendarDate,
	startTime TimeOfDay,
	endTime TimeOfDay,
	color string,
	notifyBefore int,
) *ClassSession {
	now := time.Now().UTC()

	return &ClassSession{
		ID:           uuid.New(),
		UserID:       userID,
		Subject:      subject,
		Room:         room,
		DayOfWeek:    dayOfWeek,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Attendance:   AttendancePending,
		Color:        color,
		NotifyBefore: notifyBefore,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WeeklySchedule represents class sessions grouped by weekday.
type WeeklySchedule map[Weekday][]*ClassSession

// ScheduleStats represents derived statistics for a student's week.
type ScheduleStats struct {
	TotalClasses     int
	CompletedClasses int
	AttendanceRate   int // Percentage over explicitly marked sessions
	UpcomingClasses  int
}
