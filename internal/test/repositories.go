package test

import (
	"context"
	"sync/atomic"

	"github.com/polkiloo/healthboard/internal/domain/model"
	"github.com/polkiloo/healthboard/internal/domain/repository"
)

// ChartRepositoryStub returns configured rows or errors.
type ChartRepositoryStub struct {
	PrioritiesFn   func(context.Context) ([]model.Priority, error)
	MarketSeriesFn func(context.Context) ([]model.MarketSizePoint, error)

	Items  []model.Priority
	Points []model.MarketSizePoint
	Err    error
}

// Priorities returns Items or Err.
func (s *ChartRepositoryStub) Priorities(ctx context.Context) ([]model.Priority, error) {
	if s.PrioritiesFn != nil {
		return s.PrioritiesFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// MarketSeries returns Points or Err.
func (s *ChartRepositoryStub) MarketSeries(ctx context.Context) ([]model.MarketSizePoint, error) {
	if s.MarketSeriesFn != nil {
		return s.MarketSeriesFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Points, nil
}

// HealthCheckerStub counts probes and returns Err.
type HealthCheckerStub struct {
	Err   error
	calls int32
}

// HealthCheck records the call and returns the configured error.
func (s *HealthCheckerStub) HealthCheck(ctx context.Context) error {
	atomic.AddInt32(&s.calls, 1)
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Err
}

// Calls reports how many probes were made.
func (s *HealthCheckerStub) Calls() int {
	return int(atomic.LoadInt32(&s.calls))
}

var _ repository.ChartRepository = (*ChartRepositoryStub)(nil)
var _ repository.HealthChecker = (*HealthCheckerStub)(nil)
