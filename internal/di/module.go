package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/healthboard/internal/app"
	"github.com/polkiloo/healthboard/internal/config"
	"github.com/polkiloo/healthboard/internal/logger"
	"github.com/polkiloo/healthboard/internal/metrics"
	"github.com/polkiloo/healthboard/internal/pkg/auth"
	"github.com/polkiloo/healthboard/internal/server/http/handlers"
	"github.com/polkiloo/healthboard/internal/server/http/router"
	"github.com/polkiloo/healthboard/internal/storage/postgres"
	"github.com/polkiloo/healthboard/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.DashboardFacade) handlers.DashboardFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
