package formatter

import (
	"strings"
	"testing"

	"github.com/periotto3/kintai-app/internal/domain"
	"github.com/periotto3/kintai-app/internal/report"
	"github.com/periotto3/kintai-app/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func buildTestReport() *report.Report {
	jan7 := testutil.NewTestSession("2026-01-07",
		testutil.WithClockIn("2026-01-07 10:00:00"))
	jan5a := testutil.NewTestSession("2026-01-05",
		testutil.WithClockIn("2026-01-05 09:00:00"),
		testutil.WithClockOut("2026-01-05 12:00:00"))
	jan5b := testutil.NewTestSession("2026-01-05",
		testutil.WithClockIn("2026-01-05 13:00:00"),
		testutil.WithClockOut("2026-01-05 17:30:00"))
	return report.Build([]*domain.WorkSession{jan7, jan5a, jan5b})
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(buildTestReport(), "2026-01")

	assert.Contains(t, out, "WORK LOG 2026-01")
	assert.Contains(t, out, "2026-01-07")
	assert.Contains(t, out, "2026-01-05")
	assert.Contains(t, out, "7:30", "split-shift day total")
	assert.Contains(t, out, "-", "open session renders an undefined duration")
	assert.Contains(t, out, "Total time:")
	assert.Contains(t, out, "Worked days:")
	assert.Contains(t, out, "2", "two distinct worked days")
}

func TestFormatReport_Empty(t *testing.T) {
	out := FormatReport(report.Build(nil), "2026-03")
	assert.Contains(t, out, "No sessions recorded.")
}

func TestFormatReport_DateShownOncePerDay(t *testing.T) {
	out := FormatReport(buildTestReport(), "2026-01")

	// Two sessions on 2026-01-05 but the date appears on the first row only.
	assert.Equal(t, 1, strings.Count(out, "2026-01-05"))
}
