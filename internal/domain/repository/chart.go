package repository

import (
	"context"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

// ChartRepository provides read-only access to the chart reference tables.
type ChartRepository interface {
	Priorities(ctx context.Context) ([]model.Priority, error)
	MarketSeries(ctx context.Context) ([]model.MarketSizePoint, error)
}
