// Package schedule contains class-schedule use cases.
package schedule

import (
	"sort"

	"github.com/studysync/backend/internal/domain/entity"
)

const (
	// DefaultHorizonDays is how many forward days to scan after today.
	DefaultHorizonDays = 2
	// DefaultUpcomingLimit caps the number of upcoming entries returned.
	DefaultUpcomingLimit = 3
)

// Day labels for upcoming entries.
const (
	DayLabelToday    = "Today"
	DayLabelTomorrow = "Tomorrow"
)

// ClockInfo pins the "now" used for upcoming-class computation so the result
// is a pure function of its inputs.
type ClockInfo struct {
	Date      entity.CalendarDate
	DayOfWeek entity.Weekday
	Time      entity.TimeOfDay
}

// UpcomingEntry is a class in the upcoming-classes list. MinutesUntilStart is
// set only for today's classes.
type UpcomingEntry struct {
	Session           *entity.ClassSession
	DayLabel          string
	MinutesUntilStart *int
}

// UpcomingClasses returns the next classes across today and the following
// horizonDays weekdays (wrapping around the week). Today contributes only
// classes that have not started yet, with minutes until start; later days
// contribute all their classes with no countdown. Entries with a countdown
// sort soonest-first ahead of the rest, which keep day-then-schedule order.
// The result is truncated to limit entries.
func UpcomingClasses(byDay entity.WeeklySchedule, now ClockInfo, horizonDays, limit int) []UpcomingEntry {
	upcoming := make([]UpcomingEntry, 0)

	for _, s := range byDay[now.DayOfWeek] {
		if !s.StartTime.After(now.Time) {
			continue
		}
		minutes := s.StartTime.MinutesOfDay() - now.Time.MinutesOfDay()
		upcoming = append(upcoming, UpcomingEntry{
			Session:           s,
			DayLabel:          DayLabelToday,
			MinutesUntilStart: &minutes,
		})
	}

	for offset := 1; offset <= horizonDays; offset++ {
		day := entity.Weekday((int(now.DayOfWeek) + offset) % 7)
		label := day.String()
		if offset == 1 {
			label = DayLabelTomorrow
		}
		for _, s := range byDay[day] {
			upcoming = append(upcoming, UpcomingEntry{
				Session:  s,
				DayLabel: label,
			})
		}
	}

	// Two-tier ordering: countdown entries ascending, then the rest in
	// append order. The stable sort keeps the day ordering for the latter.
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i].MinutesUntilStart, upcoming[j].MinutesUntilStart
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// WeeklyStats derives the stats-card figures for the student's week:
// total scheduled classes, attended ("completed") classes, the marked-only
// attendance rate, and how many upcoming classes are shown.
func WeeklyStats(byDay entity.WeeklySchedule, now ClockInfo) entity.ScheduleStats {
	var total, completed, marked int

	for _, sessions := range byDay {
		total += len(sessions)
		for _, s := range sessions {
			switch s.Attendance {
			case entity.AttendancePresent:
				completed++
				marked++
			case entity.AttendanceAbsent:
				marked++
			}
		}
	}

	rate := 0
	if marked > 0 {
		// Round half up, mirroring the attendance rollup.
		rate = (completed*200 + marked) / (2 * marked)
	}

	return entity.ScheduleStats{
		TotalClasses:     total,
		CompletedClasses: completed,
		AttendanceRate:   rate,
		UpcomingClasses:  len(UpcomingClasses(byDay, now, DefaultHorizonDays, DefaultUpcomingLimit)),
	}
}
