package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/periotto3/kintai-app/internal/db"
	"github.com/periotto3/kintai-app/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo against a SQLite database. It
// accepts a db.DBTX so the same repository works both on the shared pool and
// inside a unit-of-work transaction.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (work_date, clock_in, clock_out, created_at)
		VALUES (?, ?, ?, ?)`
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
		s.CreatedAt = createdAt
	}
	res, err := r.db.ExecContext(ctx, query,
		s.WorkDate,
		nullableTimeToString(s.ClockIn, domain.TimeLayout),
		nullableTimeToString(s.ClockOut, domain.TimeLayout),
		createdAt.Format(domain.TimeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading work session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSessionRepo) LatestByDate(ctx context.Context, date string) (*domain.WorkSession, error) {
	query := `SELECT id, work_date, clock_in, clock_out, created_at
		FROM work_sessions WHERE work_date = ?
		ORDER BY id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, date)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) CloseSession(ctx context.Context, id int64, ts time.Time) error {
	query := `UPDATE work_sessions SET clock_out = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, ts.Format(domain.TimeLayout), id)
	if err != nil {
		return fmt.Errorf("closing work session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking closed rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work session %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListByDate(ctx context.Context, date string) ([]*domain.WorkSession, error) {
	query := `SELECT id, work_date, clock_in, clock_out, created_at
		FROM work_sessions WHERE work_date = ?
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by date: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByMonth(ctx context.Context, month string) ([]*domain.WorkSession, error) {
	// Month filtering is a date prefix match, e.g. "2026-01-%".
	query := `SELECT id, work_date, clock_in, clock_out, created_at
		FROM work_sessions WHERE work_date LIKE ?
		ORDER BY work_date DESC, id`
	rows, err := r.db.QueryContext(ctx, query, month+"-%")
	if err != nil {
		return nil, fmt.Errorf("listing sessions by month: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.WorkSession, error) {
	query := `SELECT id, work_date, clock_in, clock_out, created_at
		FROM work_sessions
		ORDER BY work_date DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var clockIn, clockOut sql.NullString
	var createdAtStr string

	err := row.Scan(&s.ID, &s.WorkDate, &clockIn, &clockOut, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}

	return r.populateSession(&s, clockIn, clockOut, createdAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.WorkSession, error) {
	var sessions []*domain.WorkSession
	for rows.Next() {
		var s domain.WorkSession
		var clockIn, clockOut sql.NullString
		var createdAtStr string

		if err := rows.Scan(&s.ID, &s.WorkDate, &clockIn, &clockOut, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, err := r.populateSession(&s, clockIn, clockOut, createdAtStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a WorkSession after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.WorkSession, clockIn, clockOut sql.NullString, createdAtStr string) (*domain.WorkSession, error) {
	var err error
	if s.ClockIn, err = parseNullableTime(clockIn, domain.TimeLayout); err != nil {
		return nil, fmt.Errorf("parsing clock_in: %w", err)
	}
	if s.ClockOut, err = parseNullableTime(clockOut, domain.TimeLayout); err != nil {
		return nil, fmt.Errorf("parsing clock_out: %w", err)
	}

	createdAt, err := time.Parse(domain.TimeLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.CreatedAt = createdAt

	return s, nil
}
