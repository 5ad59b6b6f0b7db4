package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/healthboard/internal/config"
	"github.com/polkiloo/healthboard/internal/metrics"
	"github.com/polkiloo/healthboard/internal/server/http/dto"
	"github.com/polkiloo/healthboard/internal/server/http/handlers"
	"github.com/polkiloo/healthboard/internal/server/http/middleware"
)

// Params are the dependencies of the HTTP router.
type Params struct {
	fx.In

	Facade  handlers.DashboardFacade
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Manager
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.CORS(p.Config.CORSAllowOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	})

	authHandler := handlers.NewAuthHandler(p.Facade, p.Metrics)
	chartHandler := handlers.NewChartHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.POST("/login", authHandler.Login)
	engine.GET("/healthz", healthHandler.Health)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := engine.Group("/api")
	api.Use(middleware.AuthRequired(p.Facade, p.Metrics))
	api.GET("/chart/summary", chartHandler.Summary)
	api.GET("/chart/reports", chartHandler.Reports)
	api.GET("/session", authHandler.Session)

	return engine
}
