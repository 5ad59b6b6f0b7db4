package app

import (
	"context"

	"github.com/polkiloo/healthboard/internal/domain/model"
	"github.com/polkiloo/healthboard/internal/usecase"
)

// DashboardFacade aggregates use cases behind a single handler-facing API.
type DashboardFacade struct {
	auth   *usecase.AuthUseCase
	charts *usecase.ChartUseCase
	health *usecase.HealthUseCase
}

func NewDashboardFacade(auth *usecase.AuthUseCase, charts *usecase.ChartUseCase, health *usecase.HealthUseCase) *DashboardFacade {
	return &DashboardFacade{auth: auth, charts: charts, health: health}
}

func (f *DashboardFacade) Login(ctx context.Context, username, password string) (string, error) {
	return f.auth.Login(ctx, username, password)
}

func (f *DashboardFacade) ParseToken(token string) (*model.Session, error) {
	return f.auth.ParseToken(token)
}

func (f *DashboardFacade) Priorities(ctx context.Context) ([]model.Priority, error) {
	return f.charts.Priorities(ctx)
}

func (f *DashboardFacade) MarketSeries(ctx context.Context) ([]model.MarketSizePoint, error) {
	return f.charts.MarketSeries(ctx)
}

func (f *DashboardFacade) CheckHealth(ctx context.Context) error {
	return f.health.Check(ctx)
}

func (f *DashboardFacade) TokenStrategy() string {
	return f.auth.StrategyName()
}
