// Package attendance contains attendance-related use cases.
package attendance

import (
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// DayCell represents a single cell of the month calendar grid. A nil Date
// marks a leading blank cell before day 1.
type DayCell struct {
	Date              *entity.CalendarDate
	IsVacation        bool
	IsToday           bool
	AttendancePresent int
	AttendanceTotal   int
}

// DefaultWeekend is the institution's non-teaching days. The Friday/Saturday
// work week matches the deployed campuses; callers with a different region
// use BuildMonthGridWithWeekend.
var DefaultWeekend = []entity.Weekday{entity.Friday, entity.Saturday}

// BuildMonthGrid produces the ordered calendar cells for a month: leading
// blank cells up to the weekday of day 1, then one cell per day. The result
// is not padded to full weeks at the end.
func BuildMonthGrid(year, month int, today entity.CalendarDate, sessions []*entity.ClassSession) ([]DayCell, error) {
	return BuildMonthGridWithWeekend(year, month, today, sessions, DefaultWeekend)
}

// BuildMonthGridWithWeekend is BuildMonthGrid with a custom set of vacation
// weekdays.
func BuildMonthGridWithWeekend(
	year, month int,
	today entity.CalendarDate,
	sessions []*entity.ClassSession,
	weekend []entity.Weekday,
) ([]DayCell, error) {
	if year <= 0 {
		return nil, domainerror.NewAttendanceError(
			domainerror.ErrCodeInvalidYear,
			"invalid year",
			domainerror.ErrInvalidYear,
		)
	}
	if month < 1 || month > 12 {
		return nil, domainerror.NewAttendanceError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	leading := int(entity.WeekdayOfFirst(year, month))
	days := entity.DaysInMonth(year, month)

	cells := make([]DayCell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{})
	}

	for day := 1; day <= days; day++ {
		date := entity.NewCalendarDate(year, month, day)
		present, total := dayAttendance(date, sessions)

		cells = append(cells, DayCell{
			Date:              &date,
			IsVacation:        isWeekend(date.Weekday(), weekend),
			IsToday:           date.Equal(today),
			AttendancePresent: present,
			AttendanceTotal:   total,
		})
	}

	return cells, nil
}

// dayAttendance counts the sessions dated on the given day and how many of
// them were attended.
func dayAttendance(date entity.CalendarDate, sessions []*entity.ClassSession) (present, total int) {
	for _, s := range sessions {
		if s.Date == nil || !s.Date.Equal(date) {
			continue
		}
		total++
		if s.Attendance == entity.AttendancePresent {
			present++
		}
	}
	return present, total
}

func isWeekend(day entity.Weekday, weekend []entity.Weekday) bool {
	for _, w := range weekend {
		if day == w {
			return true
		}
	}
	return false
}
