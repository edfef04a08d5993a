package domain

import "time"

// Storage layouts. Dates and timestamps are local wall-clock strings in the
// database; there is no time-zone handling anywhere in the tracker.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	TimeLayout  = "2006-01-02 15:04:05"
)

// WorkSession is one clock-in/clock-out pair for a calendar date. A date may
// hold any number of sessions; the id orders them within the day.
type WorkSession struct {
	ID        int64
	WorkDate  string
	ClockIn   *time.Time
	ClockOut  *time.Time
	CreatedAt time.Time
}

// Open reports whether the session has a clock-in but no clock-out yet.
func (s *WorkSession) Open() bool {
	return s.ClockIn != nil && s.ClockOut == nil
}

// Minutes returns the worked minutes of the session, floor((out-in)/60s),
// clamped to zero so clock skew never yields a negative span. Returns nil
// when either timestamp is absent.
func (s *WorkSession) Minutes() *int {
	if s.ClockIn == nil || s.ClockOut == nil {
		return nil
	}
	m := int(s.ClockOut.Sub(*s.ClockIn).Seconds()) / 60
	if m < 0 {
		m = 0
	}
	return &m
}

// DaySummary is the view of a single date: its sessions in chronological
// (id ascending) order.
type DaySummary struct {
	Date     string
	Sessions []*WorkSession
}

// Open reports whether the most recent session of the day is still open.
func (d *DaySummary) Open() bool {
	if len(d.Sessions) == 0 {
		return false
	}
	return d.Sessions[len(d.Sessions)-1].Open()
}
