package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/periotto3/kintai-app/internal/domain"
	"github.com/periotto3/kintai-app/internal/report"
)

// FormatDay renders the attendance view for a single date: its sessions in
// chronological order, the day total, and whether a session is still open.
func FormatDay(day *domain.DaySummary) string {
	var b strings.Builder
	b.WriteString(Header("Attendance " + day.Date))
	b.WriteString("\n")

	if len(day.Sessions) == 0 {
		b.WriteString(Dim("No sessions recorded.") + "\n")
		return b.String()
	}

	total := 0
	rows := make([][]string, 0, len(day.Sessions))
	for i, s := range day.Sessions {
		m := s.Minutes()
		if m != nil {
			total += *m
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			FormatClock(s.ClockIn),
			FormatClock(s.ClockOut),
			report.FormatDuration(m),
		})
	}
	b.WriteString(RenderTable([]string{"#", "IN", "OUT", "TIME"}, rows))

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Day total:"), Bold(report.FormatMinutes(total))))
	if day.Open() {
		last := day.Sessions[len(day.Sessions)-1]
		b.WriteString(StyleGreen.Render("● Clocked in since "+FormatClock(last.ClockIn)) + "\n")
	} else {
		b.WriteString(Dim("Not clocked in.") + "\n")
	}
	return b.String()
}
