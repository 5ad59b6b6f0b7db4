package test

import (
	"context"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

// ChartFacadeStub provides controllable behaviour for chart endpoints.
type ChartFacadeStub struct {
	PrioritiesFn   func(context.Context) ([]model.Priority, error)
	MarketSeriesFn func(context.Context) ([]model.MarketSizePoint, error)
}

// Priorities delegates to provided function or returns a fixed record.
func (s ChartFacadeStub) Priorities(ctx context.Context) ([]model.Priority, error) {
	if s.PrioritiesFn != nil {
		return s.PrioritiesFn(ctx)
	}
	return []model.Priority{{Name: "Reduce caregiver burden", Value: 80}}, nil
}

// MarketSeries delegates to provided function or returns a fixed point.
func (s ChartFacadeStub) MarketSeries(ctx context.Context) ([]model.MarketSizePoint, error) {
	if s.MarketSeriesFn != nil {
		return s.MarketSeriesFn(ctx)
	}
	return []model.MarketSizePoint{{Year: 2025, Value: 1.97}}, nil
}

// HealthFacadeStub simulates the datastore probe.
type HealthFacadeStub struct {
	CheckFn func(context.Context) error
}

// CheckHealth returns the configured probe result.
func (s HealthFacadeStub) CheckHealth(ctx context.Context) error {
	if s.CheckFn != nil {
		return s.CheckFn(ctx)
	}
	return nil
}

// DashboardFacadeStub aggregates facade dependencies for HTTP layer tests.
type DashboardFacadeStub struct {
	AuthFacadeStub
	ChartFacadeStub
	HealthFacadeStub
}
