// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"
)

// Weekday represents a day of the week, 0 = Sunday through 6 = Saturday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var weekdayKeys = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// String returns the display name of the weekday (e.g. "Monday").
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Key returns the lowercase identifier used in API payloads (e.g. "monday").
func (w Weekday) Key() string {
	if w < Sunday || w > Saturday {
		return ""
	}
	return weekdayKeys[w]
}

// IsValid reports whether the weekday is within the Sunday..Saturday range.
func (w Weekday) IsValid() bool {
	return w >= Sunday && w <= Saturday
}

// ParseWeekday parses a lowercase weekday key (e.g. "monday") into a Weekday.
func ParseWeekday(key string) (Weekday, error) {
	for i, k := range weekdayKeys {
		if k == key {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", key)
}

// CalendarDate is a timezone-free year/month/day triple. Equality and ordering
// are lexicographic on (year, month, day).
type CalendarDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// NewCalendarDate creates a CalendarDate from its components.
func NewCalendarDate(year, month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateOf extracts the calendar date from a time.Time in its location.
func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseCalendarDate parses a date in YYYY-MM-DD format.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return CalendarDateOf(t), nil
}

// IsZero reports whether the date is the zero value.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Equal reports whether two dates are the same day.
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d CalendarDate) After(other CalendarDate) bool {
	return other.Before(d)
}

// Weekday returns the day of week for the date.
func (d CalendarDate) Weekday() Weekday {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return Weekday(t.Weekday())
}

// Time converts the date to a UTC midnight time.Time.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years (Gregorian rule).
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOfFirst returns the weekday of day 1 of the given month.
func WeekdayOfFirst(year, month int) Weekday {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Weekday(t.Weekday())
}

// TimeOfDay is a 24h hour/minute pair, ordered by (hour, minute).
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a time in HH:MM format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MinutesOfDay returns the number of minutes since midnight.
func (t TimeOfDay) MinutesOfDay() int {
	return t.Hour*60 + t.Minute
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.MinutesOfDay() > other.MinutesOfDay()
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
