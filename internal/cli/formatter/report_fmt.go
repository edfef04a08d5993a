package formatter

import (
	"fmt"
	"strings"

	"github.com/periotto3/kintai-app/internal/report"
)

// FormatReport renders a work log report grouped by day, most recent date
// first, with per-day totals and the grand total. label names the range,
// e.g. "2026-01" or "all time".
func FormatReport(r *report.Report, label string) string {
	var b strings.Builder
	b.WriteString(Header("Work log " + label))
	b.WriteString("\n")

	if len(r.Days) == 0 {
		b.WriteString(Dim("No sessions recorded.") + "\n")
		return b.String()
	}

	var rows [][]string
	for _, day := range r.Days {
		for i, s := range day.Sessions {
			date, dayTotal := "", ""
			if i == 0 {
				date = day.Date
			}
			if i == len(day.Sessions)-1 {
				dayTotal = Bold(report.FormatMinutes(day.TotalMinutes))
			}
			rows = append(rows, []string{
				date,
				FormatClock(s.ClockIn),
				FormatClock(s.ClockOut),
				report.FormatDuration(s.Minutes()),
				dayTotal,
			})
		}
	}
	b.WriteString(RenderTable([]string{"DATE", "IN", "OUT", "TIME", "DAY TOTAL"}, rows))

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total time:"), Bold(report.FormatMinutes(r.TotalMinutes))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Worked days:"), Bold(fmt.Sprintf("%d", r.TotalDays))))
	return b.String()
}
