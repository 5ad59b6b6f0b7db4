package handlers

import (
	"context"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (*model.Session, error)
}

// ChartFacade exposes the chart datasets.
type ChartFacade interface {
	Priorities(ctx context.Context) ([]model.Priority, error)
	MarketSeries(ctx context.Context) ([]model.MarketSizePoint, error)
}

// HealthFacade probes backing services.
type HealthFacade interface {
	CheckHealth(ctx context.Context) error
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	AuthFacade
	ChartFacade
	HealthFacade
}
