package usecase

import (
	"context"
	"fmt"
	"sort"

	domainErrors "github.com/polkiloo/healthboard/internal/domain/errors"
	"github.com/polkiloo/healthboard/internal/domain/model"
	"github.com/polkiloo/healthboard/internal/domain/repository"
)

// ChartUseCase serves the two read-only chart datasets.
type ChartUseCase struct {
	charts repository.ChartRepository
}

// NewChartUseCase constructs ChartUseCase.
func NewChartUseCase(charts repository.ChartRepository) *ChartUseCase {
	return &ChartUseCase{charts: charts}
}

// Priorities returns priority records ordered by value, highest first.
func (u *ChartUseCase) Priorities(ctx context.Context) ([]model.Priority, error) {
	items, err := u.charts.Priorities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrDatastore, err)
	}
	if items == nil {
		return []model.Priority{}, nil
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value > items[j].Value
	})
	return items, nil
}

// MarketSeries returns market size points ordered by year, oldest first.
func (u *ChartUseCase) MarketSeries(ctx context.Context) ([]model.MarketSizePoint, error) {
	points, err := u.charts.MarketSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrDatastore, err)
	}
	if points == nil {
		return []model.MarketSizePoint{}, nil
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})
	return points, nil
}
