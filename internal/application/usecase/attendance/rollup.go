// Package attendance contains attendance-related use cases.
package attendance

import (
	"math"

	"github.com/studysync/backend/internal/domain/entity"
)

// SubjectStats represents attendance figures for a single subject.
type SubjectStats struct {
	Present    int
	Total      int
	Percentage int
}

// RollupBySubject computes per-subject attendance over explicitly marked
// sessions. Only present/absent sessions enter the totals; late and pending
// sessions are excluded from both numerator and denominator, so a subject
// with nothing marked yet reports 0/0 at 0%.
func RollupBySubject(sessions []*entity.ClassSession) map[string]SubjectStats {
	stats := make(map[string]SubjectStats)

	for _, s := range sessions {
		if !s.Attendance.IsMarked() {
			continue
		}
		st := stats[s.Subject]
		st.Total++
		if s.Attendance == entity.AttendancePresent {
			st.Present++
		}
		stats[s.Subject] = st
	}

	for subject, st := range stats {
		st.Percentage = ratePercent(st.Present, st.Total)
		stats[subject] = st
	}

	return stats
}

// OverallRate computes the global attendance percentage across all sessions
// using the same marked-only denominator. It is deliberately not an average
// of per-subject percentages, which would skew toward subjects with few
// sessions.
func OverallRate(sessions []*entity.ClassSession) int {
	var present, total int
	for _, s := range sessions {
		if !s.Attendance.IsMarked() {
			continue
		}
		total++
		if s.Attendance == entity.AttendancePresent {
			present++
		}
	}
	return ratePercent(present, total)
}

// ratePercent returns round-half-up(100 * present / total), and 0 when
// total is 0.
func ratePercent(present, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) * 100 / float64(total)))
}
