// Package report turns a range of work sessions into per-day and grand
// totals. It is pure: building a report never touches the store and the same
// input always yields the same output.
package report

import (
	"fmt"

	"github.com/periotto3/kintai-app/internal/domain"
)

// DayGroup is one calendar date of a report: its sessions in chronological
// order and the sum of their defined durations.
type DayGroup struct {
	Date         string
	Sessions     []*domain.WorkSession
	TotalMinutes int
}

// Report is the aggregate over a queried date range.
type Report struct {
	// Days are ordered most recent date first.
	Days []DayGroup
	// TotalMinutes is the sum of all day totals.
	TotalMinutes int
	// TotalDays counts distinct dates with at least one session. A date
	// whose sessions are all still open counts: it has a clock-in.
	TotalDays int
}

// Build groups sessions by date and sums durations. The input must already be
// ordered by work_date descending then id ascending, which is what every
// SessionRepo range query returns; grouping preserves that order. Sessions
// without a defined duration contribute zero to the totals.
func Build(sessions []*domain.WorkSession) *Report {
	r := &Report{}
	for _, s := range sessions {
		if len(r.Days) == 0 || r.Days[len(r.Days)-1].Date != s.WorkDate {
			r.Days = append(r.Days, DayGroup{Date: s.WorkDate})
		}
		day := &r.Days[len(r.Days)-1]
		day.Sessions = append(day.Sessions, s)
		if m := s.Minutes(); m != nil {
			day.TotalMinutes += *m
		}
	}
	for _, day := range r.Days {
		r.TotalMinutes += day.TotalMinutes
	}
	r.TotalDays = len(r.Days)
	return r
}

// FormatMinutes renders a minute count as "h:mm", e.g. 210 -> "3:30".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// FormatDuration renders an optional minute count, "-" when undefined.
func FormatDuration(m *int) string {
	if m == nil {
		return "-"
	}
	return FormatMinutes(*m)
}
