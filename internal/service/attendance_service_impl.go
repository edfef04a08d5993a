package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/periotto3/kintai-app/internal/db"
	"github.com/periotto3/kintai-app/internal/domain"
	"github.com/periotto3/kintai-app/internal/repository"
)

type attendanceService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

// NewAttendanceService creates the attendance engine. Mutations run inside
// the unit of work so the latest-session check and the write are atomic.
func NewAttendanceService(sessions repository.SessionRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) AttendanceService {
	return &attendanceService{
		sessions: sessions,
		uow:      uow,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *attendanceService) ClockIn(ctx context.Context, date string) (*domain.WorkSession, error) {
	start := time.Now()
	created, err := s.clockIn(ctx, date)
	s.observe(ctx, "clock_in", start, map[string]any{"date": date}, err)
	return created, err
}

func (s *attendanceService) clockIn(ctx context.Context, date string) (*domain.WorkSession, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	ts := s.clock.Now().Truncate(time.Second)

	var created *domain.WorkSession
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)

		last, err := repo.LatestByDate(ctx, date)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return storageErr(err)
		}
		if last != nil && last.Open() {
			return fmt.Errorf("%s has an open session since %s: %w",
				date, last.ClockIn.Format(domain.TimeLayout), ErrAlreadyClockedIn)
		}

		sess := &domain.WorkSession{WorkDate: date, ClockIn: &ts, CreatedAt: ts}
		if err := repo.Create(ctx, sess); err != nil {
			return storageErr(err)
		}
		created = sess
		return nil
	})
	if err != nil {
		// BeginTx/Commit failures surface here without the callback's tag.
		if !errors.Is(err, ErrAlreadyClockedIn) {
			return nil, storageErr(err)
		}
		return nil, err
	}
	return created, nil
}

func (s *attendanceService) ClockOut(ctx context.Context, date string) (*domain.WorkSession, error) {
	start := time.Now()
	closed, err := s.clockOut(ctx, date)
	s.observe(ctx, "clock_out", start, map[string]any{"date": date}, err)
	return closed, err
}

func (s *attendanceService) clockOut(ctx context.Context, date string) (*domain.WorkSession, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	ts := s.clock.Now().Truncate(time.Second)

	var closed *domain.WorkSession
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)

		last, err := repo.LatestByDate(ctx, date)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("no attendance recorded for %s yet: %w", date, ErrNoOpenSession)
		}
		if err != nil {
			return storageErr(err)
		}
		if !last.Open() {
			return fmt.Errorf("latest session for %s is already closed: %w", date, ErrNoOpenSession)
		}

		if err := repo.CloseSession(ctx, last.ID, ts); err != nil {
			return storageErr(err)
		}
		last.ClockOut = &ts
		closed = last
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoOpenSession) {
			return nil, storageErr(err)
		}
		return nil, err
	}
	return closed, nil
}

func (s *attendanceService) Day(ctx context.Context, date string) (*domain.DaySummary, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	sessions, err := s.sessions.ListByDate(ctx, date)
	if err != nil {
		return nil, storageErr(err)
	}
	return &domain.DaySummary{Date: date, Sessions: sessions}, nil
}

func (s *attendanceService) observe(ctx context.Context, name string, start time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

// storageErr tags err as a storage failure. Idempotent so transaction
// plumbing errors and already-tagged callback errors come out the same.
func storageErr(err error) error {
	if errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
