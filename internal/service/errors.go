package service

import "errors"

// Engine errors. Both are recoverable by the user: the engine never mutates
// state when returning them, and the caller turns them into a message.
var (
	// ErrAlreadyClockedIn is returned by ClockIn when the date's most
	// recent session is still open.
	ErrAlreadyClockedIn = errors.New("already clocked in")

	// ErrNoOpenSession is returned by ClockOut when the date has no
	// session at all or its most recent session is already closed. The two
	// flavors differ only in the wrapped message.
	ErrNoOpenSession = errors.New("no open session")

	// ErrStorageUnavailable wraps storage I/O failures so callers can
	// render a generic failure instead of a domain message.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
