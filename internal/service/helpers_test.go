package service

import (
	"testing"

	"github.com/periotto3/kintai-app/internal/repository"
	"github.com/periotto3/kintai-app/internal/testutil"
)

// setupServices wires an attendance engine and reporter against a fresh
// in-memory database with the clock pinned at 2026-01-05 09:00:00.
func setupServices(t *testing.T) (AttendanceService, ReportService, *testutil.FakeClock) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	uow := testutil.NewTestUoW(database)
	clock := testutil.NewFakeClock(testutil.MustTime(t, "2026-01-05 09:00:00"))

	attendance := NewAttendanceService(repo, uow, clock)
	reports := NewReportService(repo)
	return attendance, reports, clock
}
