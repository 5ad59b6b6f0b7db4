package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/polkiloo/healthboard/internal/domain/repository"
	"github.com/polkiloo/healthboard/internal/storage/postgres/migrations"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// runMigrations applies the embedded goose migrations over a database/sql handle.
var runMigrations = func(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Options tune the connection pool and startup behaviour.
type Options struct {
	MaxConns int
	Migrate  bool
}

// Storage serves the chart tables from PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type chartRepository struct {
	storage *Storage
}

// New connects to dsn, optionally running migrations first.
func New(ctx context.Context, dsn string, opts Options, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = int32(opts.MaxConns)
	}

	if opts.Migrate {
		if err := runMigrations(ctx, dsn); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("chart tables migrated")
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	logger.Info("datastore pool ready", slog.Int("max_conns", int(cfg.MaxConns)))
	return &Storage{pool: pool, logger: logger}, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Charts returns the chart repository backed by this storage.
func (s *Storage) Charts() repository.ChartRepository {
	return &chartRepository{storage: s}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

const (
	prioritiesQuery   = `SELECT goal_name AS name, percentage AS value FROM ai_priorities ORDER BY percentage DESC`
	marketSeriesQuery = `SELECT year, market_size_billion AS value FROM printing_market_size ORDER BY year ASC`
)
