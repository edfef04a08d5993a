package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO work_sessions (work_date, clock_in) VALUES (?, ?)`,
			"2026-01-05", "2026-01-05 09:00:00")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM work_sessions`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()
	boom := errors.New("boom")

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO work_sessions (work_date, clock_in) VALUES (?, ?)`,
			"2026-01-05", "2026-01-05 09:00:00"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM work_sessions`).Scan(&count))
	assert.Equal(t, 0, count, "insert must be rolled back with the failing callback")
}
