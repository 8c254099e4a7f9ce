// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/studysync/backend/internal/application/usecase/schedule"
	"github.com/studysync/backend/internal/domain/entity"
)

// CreateSessionRequest represents the request body for class session creation.
type CreateSessionRequest struct {
	Subject      string  `json:"subject" binding:"required,min=1,max=255"`
	Room         string  `json:"room"`
	DayOfWeek    string  `json:"day_of_week" binding:"required"`
	Date         *string `json:"date"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	Color        string  `json:"color"`
	NotifyBefore int     `json:"notify_before"`
}

// UpdateSessionRequest represents the request body for class session update.
// Omitted fields keep their current value.
type UpdateSessionRequest struct {
	Subject      *string `json:"subject"`
	Room         *string `json:"room"`
	DayOfWeek    *string `json:"day_of_week"`
	Date         *string `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Color        *string `json:"color"`
	NotifyBefore *int    `json:"notify_before"`
}

// MarkAttendanceRequest represents the request body for attendance marking.
type MarkAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// SessionResponse represents a class session in API responses.
type SessionResponse struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	Room         string    `json:"room"`
	DayOfWeek    string    `json:"day_of_week"`
	Date         *string   `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Attendance   string    `json:"attendance"`
	Color        string    `json:"color"`
	NotifyBefore int       `json:"notify_before"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WeeklyScheduleResponse represents the weekly schedule keyed by weekday.
type WeeklyScheduleResponse struct {
	Schedule map[string][]SessionResponse `json:"schedule"`
}

// UpcomingClassResponse represents an upcoming class entry.
type UpcomingClassResponse struct {
	Session           SessionResponse `json:"session"`
	DayLabel          string          `json:"day_label"`
	MinutesUntilStart *int            `json:"minutes_until_start,omitempty"`
}

// WeeklyStatsResponse represents schedule statistics with upcoming classes.
type WeeklyStatsResponse struct {
	TotalClasses     int                     `json:"total_classes"`
	CompletedClasses int                     `json:"completed_classes"`
	AttendanceRate   int                     `json:"attendance_rate"`
	UpcomingClasses  int                     `json:"upcoming_classes"`
	Upcoming         []UpcomingClassResponse `json:"upcoming"`
}

// ToSessionResponse converts a domain ClassSession entity to a SessionResponse DTO.
func ToSessionResponse(session *entity.ClassSession) SessionResponse {
	var date *string
	if session.Date != nil {
		d := session.Date.String()
		date = &d
	}

	return SessionResponse{
		ID:           session.ID.String(),
		Subject:      session.Subject,
		Room:         session.Room,
		DayOfWeek:    session.DayOfWeek.Key(),
		Date:         date,
		StartTime:    session.StartTime.String(),
		EndTime:      session.EndTime.String(),
		Attendance:   string(session.Attendance),
		Color:        session.Color,
		NotifyBefore: session.NotifyBefore,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

// ToWeeklyScheduleResponse converts a domain WeeklySchedule to its DTO.
func ToWeeklyScheduleResponse(weeklySchedule entity.WeeklySchedule) WeeklyScheduleResponse {
	out := make(map[string][]SessionResponse, len(weeklySchedule))
	for day, sessions := range weeklySchedule {
		list := make([]SessionResponse, len(sessions))
		for i, session := range sessions {
			list[i] = ToSessionResponse(session)
		}
		out[day.Key()] = list
	}
	return WeeklyScheduleResponse{Schedule: out}
}

// ToWeeklyStatsResponse converts schedule stats and upcoming entries to a DTO.
func ToWeeklyStatsResponse(stats entity.ScheduleStats, upcoming []schedule.UpcomingEntry) WeeklyStatsResponse {
	entries := make([]UpcomingClassResponse, len(upcoming))
	for i, entry := range upcoming {
		entries[i] = UpcomingClassResponse{
			Session:           ToSessionResponse(entry.Session),
			DayLabel:          entry.DayLabel,
			MinutesUntilStart: entry.MinutesUntilStart,
		}
	}

	return WeeklyStatsResponse{
		TotalClasses:     stats.TotalClasses,
		CompletedClasses: stats.CompletedClasses,
		AttendanceRate:   stats.AttendanceRate,
		UpcomingClasses:  stats.UpcomingClasses,
		Upcoming:         entries,
	}
}
