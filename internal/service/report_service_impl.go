package service

import (
	"context"
	"fmt"
	"time"

	"github.com/periotto3/kintai-app/internal/domain"
	"github.com/periotto3/kintai-app/internal/report"
	"github.com/periotto3/kintai-app/internal/repository"
)

type reportService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

// NewReportService creates the aggregation reporter over the session store.
func NewReportService(sessions repository.SessionRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Monthly(ctx context.Context, month string) (*report.Report, error) {
	start := time.Now()
	r, err := s.monthly(ctx, month)
	s.observe(ctx, "report_monthly", start, map[string]any{"month": month}, err)
	return r, err
}

func (s *reportService) monthly(ctx context.Context, month string) (*report.Report, error) {
	if _, err := time.Parse(domain.MonthLayout, month); err != nil {
		return nil, fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
	}
	sessions, err := s.sessions.ListByMonth(ctx, month)
	if err != nil {
		return nil, storageErr(err)
	}
	return report.Build(sessions), nil
}

func (s *reportService) All(ctx context.Context) (*report.Report, error) {
	start := time.Now()
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		err = storageErr(err)
		s.observe(ctx, "report_all", start, nil, err)
		return nil, err
	}
	r := report.Build(sessions)
	s.observe(ctx, "report_all", start, nil, nil)
	return r, nil
}

func (s *reportService) observe(ctx context.Context, name string, start time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
