package testutil

import (
	"testing"
	"time"

	"github.com/periotto3/kintai-app/internal/domain"
)

// SessionOption customizes a test work session.
type SessionOption func(*domain.WorkSession)

// WithClockIn sets the clock-in timestamp from a "YYYY-MM-DD HH:MM:SS" string.
func WithClockIn(ts string) SessionOption {
	return func(s *domain.WorkSession) {
		s.ClockIn = mustTime(ts)
	}
}

// WithClockOut sets the clock-out timestamp from a "YYYY-MM-DD HH:MM:SS" string.
func WithClockOut(ts string) SessionOption {
	return func(s *domain.WorkSession) {
		s.ClockOut = mustTime(ts)
	}
}

// NewTestSession builds a work session for the given date. By default it is
// open with clock_in at 09:00:00 on that date.
func NewTestSession(date string, opts ...SessionOption) *domain.WorkSession {
	in := mustTime(date + " 09:00:00")
	s := &domain.WorkSession{
		WorkDate:  date,
		ClockIn:   in,
		CreatedAt: *in,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MustTime parses a tracker-layout timestamp or fails the test.
func MustTime(t *testing.T, ts string) time.Time {
	t.Helper()
	v, err := time.Parse(domain.TimeLayout, ts)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", ts, err)
	}
	return v
}

func mustTime(ts string) *time.Time {
	v, err := time.Parse(domain.TimeLayout, ts)
	if err != nil {
		panic("bad fixture timestamp: " + ts)
	}
	return &v
}
