package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// whole slice re-runs on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per clock-in/clock-out pair. work_date is deliberately not
	// unique: a day accumulates a new session for every clock-in after a
	// clock-out (breaks, split shifts). Only the highest-id session of a
	// date may be open.
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		work_date  TEXT NOT NULL,
		clock_in   TEXT,
		clock_out  TEXT,
		created_at TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_sessions_date ON work_sessions(work_date)`,
}
