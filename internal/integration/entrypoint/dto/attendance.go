// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"sort"

	"github.com/studysync/backend/internal/application/usecase/attendance"
)

// CalendarCellResponse represents a single cell in the month grid. Leading
// blank cells before day 1 have a null date.
type CalendarCellResponse struct {
	Date              *string `json:"date"`
	IsVacation        bool    `json:"is_vacation"`
	IsToday           bool    `json:"is_today"`
	AttendancePresent int     `json:"attendance_present"`
	AttendanceTotal   int     `json:"attendance_total"`
}

// CalendarResponse represents the month calendar grid.
type CalendarResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Cells []CalendarCellResponse `json:"cells"`
}

// SubjectStatsResponse represents attendance stats for one subject.
type SubjectStatsResponse struct {
	Subject    string `json:"subject"`
	Present    int    `json:"present"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// AttendanceStatsResponse represents the per-subject attendance breakdown.
type AttendanceStatsResponse struct {
	BySubject   []SubjectStatsResponse `json:"by_subject"`
	OverallRate int                    `json:"overall_rate"`
}

// ToCalendarResponse converts a calendar grid to its DTO.
func ToCalendarResponse(year, month int, cells []attendance.DayCell) CalendarResponse {
	out := make([]CalendarCellResponse, len(cells))
	for i, cell := range cells {
		var date *string
		if cell.Date != nil {
			d := cell.Date.String()
			date = &d
		}
		out[i] = CalendarCellResponse{
			Date:              date,
			IsVacation:        cell.IsVacation,
			IsToday:           cell.IsToday,
			AttendancePresent: cell.AttendancePresent,
			AttendanceTotal:   cell.AttendanceTotal,
		}
	}

	return CalendarResponse{
		Year:  year,
		Month: month,
		Cells: out,
	}
}

// ToAttendanceStatsResponse converts per-subject stats to a DTO with subjects
// in alphabetical order.
func ToAttendanceStatsResponse(bySubject map[string]attendance.SubjectStats, overallRate int) AttendanceStatsResponse {
	subjects := make([]string, 0, len(bySubject))
	for subject := range bySubject {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	out := make([]SubjectStatsResponse, len(subjects))
	for i, subject := range subjects {
		stats := bySubject[subject]
		out[i] = SubjectStatsResponse{
			Subject:    subject,
			Present:    stats.Present,
			Total:      stats.Total,
			Percentage: stats.Percentage,
		}
	}

	return AttendanceStatsResponse{
		BySubject:   out,
		OverallRate: overallRate,
	}
}
