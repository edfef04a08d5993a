package service

import (
	"context"
	"testing"
	"time"

	"github.com/periotto3/kintai-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockIn_FreshDay(t *testing.T) {
	attendance, _, _ := setupServices(t)
	ctx := context.Background()

	sess, err := attendance.ClockIn(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", sess.WorkDate)
	assert.True(t, sess.Open())
	require.NotNil(t, sess.ClockIn)
	assert.Equal(t, "2026-01-05 09:00:00", sess.ClockIn.Format(domain.TimeLayout))

	day, err := attendance.Day(ctx, "2026-01-05")
	require.NoError(t, err)
	require.Len(t, day.Sessions, 1)
	assert.True(t, day.Open())
}

func TestClockIn_WhileOpen(t *testing.T) {
	attendance, _, clock := setupServices(t)
	ctx := context.Background()

	_, err := attendance.ClockIn(ctx, "2026-01-05")
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	_, err = attendance.ClockIn(ctx, "2026-01-05")
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)

	// No state change on error.
	day, err := attendance.Day(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.Len(t, day.Sessions, 1)
	assert.Equal(t, "2026-01-05 09:00:00", day.Sessions[0].ClockIn.Format(domain.TimeLayout))
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	attendance, _, _ := setupServices(t)
	ctx := context.Background()

	_, err := attendance.ClockOut(ctx, "2026-01-05")
	assert.ErrorIs(t, err, ErrNoOpenSession)

	day, err := attendance.Day(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.Empty(t, day.Sessions)
}

func TestClockOut_ClosesLatestSession(t *testing.T) {
	attendance, _, clock := setupServices(t)
	ctx := context.Background()

	_, err := attendance.ClockIn(ctx, "2026-01-05")
	require.NoError(t, err)

	clock.Advance(3*time.Hour + 30*time.Minute)
	sess, err := attendance.ClockOut(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.False(t, sess.Open())
	require.NotNil(t, sess.ClockOut)
	assert.Equal(t, "2026-01-05 12:30:00", sess.ClockOut.Format(domain.TimeLayout))
	require.NotNil(t, sess.Minutes())
	assert.Equal(t, 210, *sess.Minutes())
}

func TestClockOut_AlreadyClosed(t *testing.T) {
	attendance, _, clock := setupServices(t)
	ctx := context.Background()

	_, err := attendance.ClockIn(ctx, "2026-01-05")
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, err = attendance.ClockOut(ctx, "2026-01-05")
	require.NoError(t, err)

	_, err = attendance.ClockOut(ctx, "2026-01-05")
	assert.ErrorIs(t, err, ErrNoOpenSession)

	day, err := attendance.Day(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.Len(t, day.Sessions, 1, "failed clock-out must not create or mutate sessions")
}

func TestClockIn_AfterClockOut_StartsNewSession(t *testing.T) {
	attendance, _, clock := setupServices(t)
	ctx := context.Background()

	_, err := attendance.ClockIn(ctx, "2026-01-05")
	require.NoError(t, err)
	clock.Advance(3 * time.Hour)
	_, err = attendance.ClockOut(ctx, "2026-01-05")
	require.NoError(t, err)

	clock.Advance(time.Hour)
	second, err := attendance.ClockIn(ctx, "2026-01-05")
	require.NoError(t, err)
	assert.True(t, second.Open())

	day, err := attendance.Day(ctx, "2026-01-05")
	require.NoError(t, err)
	require.Len(t, day.Sessions, 2)
	assert.False(t, day.Sessions[0].Open(), "first session stays frozen history")
	assert.True(t, day.Open())
	assert.Greater(t, day.Sessions[1].ID, day.Sessions[0].ID)
}

func TestClockIn_IsDateParametric(t *testing.T) {
	attendance, _, _ := setupServices(t)
	ctx := context.Background()

	// An open session on one date never blocks another date.
	_, err := attendance.ClockIn(ctx, "2026-01-05")
	require.NoError(t, err)
	_, err = attendance.ClockIn(ctx, "2026-01-06")
	require.NoError(t, err)
}

func TestClockIn_InvalidDate(t *testing.T) {
	attendance, _, _ := setupServices(t)

	_, err := attendance.ClockIn(context.Background(), "05.01.2026")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyClockedIn)
}

func TestDay_InvalidDate(t *testing.T) {
	attendance, _, _ := setupServices(t)

	_, err := attendance.Day(context.Background(), "notadate")
	assert.Error(t, err)
}
