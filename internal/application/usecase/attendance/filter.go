// Package attendance contains attendance-related use cases.
package attendance

import (
	"strings"

	"github.com/studysync/backend/internal/domain/entity"
)

// SubjectAll matches every subject when used as the criteria subject.
const SubjectAll = "all"

// SessionCriteria defines filter options for class sessions. All criteria
// are ANDed; zero values match everything.
type SessionCriteria struct {
	StartDate *entity.CalendarDate // Inclusive
	EndDate   *entity.CalendarDate // Inclusive
	Subject   string               // "all" or empty matches every subject
	Search    string               // Case-insensitive substring over subject and room
}

// FilterSessions returns the sessions matching the criteria. The filter is
// stable (input order preserved) and never mutates its input. Sessions
// without a concrete date are excluded when a date range is set.
func FilterSessions(sessions []*entity.ClassSession, criteria SessionCriteria) []*entity.ClassSession {
	matched := make([]*entity.ClassSession, 0, len(sessions))
	search := strings.ToLower(criteria.Search)

	for _, s := range sessions {
		if !matchesDateRange(s.Date, criteria.StartDate, criteria.EndDate) {
			continue
		}
		if !matchesSubject(s.Subject, criteria.Subject) {
			continue
		}
		if !matchesSearch(s, search) {
			continue
		}
		matched = append(matched, s)
	}

	return matched
}

func matchesDateRange(date, start, end *entity.CalendarDate) bool {
	if start == nil && end == nil {
		return true
	}
	if date == nil {
		return false
	}
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}

func matchesSubject(subject, wanted string) bool {
	return wanted == "" || wanted == SubjectAll || subject == wanted
}

func matchesSearch(s *entity.ClassSession, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Subject), search) ||
		strings.Contains(strings.ToLower(s.Room), search)
}
