package postgres

import (
	"context"
	"log/slog"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

func (r *chartRepository) Priorities(ctx context.Context) ([]model.Priority, error) {
	rows, err := r.storage.pool.Query(ctx, prioritiesQuery)
	if err != nil {
		r.storage.logger.Error("query priorities", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Priority, 0)
	for rows.Next() {
		var p model.Priority
		if err := rows.Scan(&p.Name, &p.Value); err != nil {
			r.storage.logger.Error("scan priority", slog.String("error", err.Error()))
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.storage.logger.Error("iterate priorities", slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}

func (r *chartRepository) MarketSeries(ctx context.Context) ([]model.MarketSizePoint, error) {
	rows, err := r.storage.pool.Query(ctx, marketSeriesQuery)
	if err != nil {
		r.storage.logger.Error("query market series", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	result := make([]model.MarketSizePoint, 0)
	for rows.Next() {
		var p model.MarketSizePoint
		if err := rows.Scan(&p.Year, &p.Value); err != nil {
			r.storage.logger.Error("scan market point", slog.String("error", err.Error()))
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.storage.logger.Error("iterate market series", slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}
