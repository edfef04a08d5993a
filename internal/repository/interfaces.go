package repository

import (
	"context"
	"errors"
	"time"

	"github.com/periotto3/kintai-app/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SessionRepo is the durable store of work sessions. Rows are append-only
// except for CloseSession, which sets clock_out on a single session exactly
// once.
type SessionRepo interface {
	// Create inserts a new session and assigns its id from the
	// autoincrement sequence.
	Create(ctx context.Context, s *domain.WorkSession) error
	// LatestByDate returns the session with the highest id for the date,
	// the one clock-in/clock-out sequencing is decided against.
	// Returns ErrNotFound when the date has no sessions.
	LatestByDate(ctx context.Context, date string) (*domain.WorkSession, error)
	// CloseSession sets clock_out on the given session.
	CloseSession(ctx context.Context, id int64, ts time.Time) error
	// ListByDate returns the date's sessions ordered by id ascending.
	ListByDate(ctx context.Context, date string) ([]*domain.WorkSession, error)
	// ListByMonth returns all sessions whose work_date starts with the
	// "YYYY-MM" prefix, ordered by work_date descending then id ascending.
	ListByMonth(ctx context.Context, month string) ([]*domain.WorkSession, error)
	// ListAll returns every session, ordered by work_date descending then
	// id ascending.
	ListAll(ctx context.Context) ([]*domain.WorkSession, error)
}
