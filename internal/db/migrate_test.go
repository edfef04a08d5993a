package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'work_sessions'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "work_sessions", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running all migrations must be a no-op.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestOpenDB_AllowsMultipleSessionsPerDate(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO work_sessions (work_date, clock_in) VALUES (?, ?)`,
		"2026-01-05", "2026-01-05 09:00:00",
	)
	require.NoError(t, err)
	_, err = database.Exec(
		`INSERT INTO work_sessions (work_date, clock_in) VALUES (?, ?)`,
		"2026-01-05", "2026-01-05 13:00:00",
	)
	require.NoError(t, err, "work_date must not carry a unique constraint")

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM work_sessions WHERE work_date = ?`, "2026-01-05",
	).Scan(&count))
	assert.Equal(t, 2, count)
}
