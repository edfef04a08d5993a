package service

import (
	"context"

	"github.com/periotto3/kintai-app/internal/domain"
	"github.com/periotto3/kintai-app/internal/report"
)

// AttendanceService is the clock-in/clock-out state machine for a calendar
// date. The CLI always passes today, but the engine is date-parametric.
type AttendanceService interface {
	// ClockIn opens a new session for the date. Fails with
	// ErrAlreadyClockedIn when the date's most recent session is open.
	ClockIn(ctx context.Context, date string) (*domain.WorkSession, error)
	// ClockOut closes the date's most recent session. Fails with
	// ErrNoOpenSession when there is nothing to close.
	ClockOut(ctx context.Context, date string) (*domain.WorkSession, error)
	// Day returns the date's sessions in chronological order.
	Day(ctx context.Context, date string) (*domain.DaySummary, error)
}

// ReportService aggregates sessions into day and range totals.
type ReportService interface {
	// Monthly reports all sessions of a "YYYY-MM" month.
	Monthly(ctx context.Context, month string) (*report.Report, error)
	// All reports every recorded session.
	All(ctx context.Context) (*report.Report, error)
}
