package formatter

import "time"

// FormatClock renders a session timestamp as wall-clock "HH:MM", or "-" when
// the timestamp is absent (an open session's clock-out).
func FormatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}

// FormatTimestamp renders a full second-precision timestamp for messages.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
