package service

import "time"

// Clock supplies the current time; an interface so the engine is testable
// with arbitrary dates and timestamps.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
