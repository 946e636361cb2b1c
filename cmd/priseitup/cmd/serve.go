package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/di-awab/priseitup/internal/api/handlers"
	"github.com/di-awab/priseitup/internal/api/middleware"
	"github.com/di-awab/priseitup/internal/config"
	"github.com/di-awab/priseitup/internal/engine"
	"github.com/di-awab/priseitup/internal/market"
	"github.com/di-awab/priseitup/internal/recommend"
	"github.com/di-awab/priseitup/internal/store"
	"github.com/di-awab/priseitup/pkg/logger"
	"github.com/di-awab/priseitup/pkg/pricing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and retention scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	st, err := store.NewPostgresStore(context.Background(), cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	eng := engine.New(
		st,
		pricing.NewEstimator(),
		market.NewSampler(),
		recommend.NewGenerator(),
		engine.WithLogger(logger.WithComponent(log, "engine")),
		engine.WithDefaultRegion(cfg.Appraisal.DefaultRegion),
		engine.WithExtractCacheSize(cfg.Appraisal.ExtractCacheSize),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(logger.WithComponent(log, "http")))
	e.Use(middleware.Metrics())
	e.Use(middleware.RateLimit(cfg.Server.RateLimit.PerSecond, cfg.Server.RateLimit.Burst))

	// Operational endpoints live directly on Echo, outside the OpenAPI
	// surface.
	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("priseitup API", Version))

	handlers.RegisterAppraiseRoutes(api, handlers.NewAppraiseHandler(eng))
	handlers.RegisterExtractRoutes(api, handlers.NewExtractHandler(eng))
	handlers.RegisterSampleRoutes(api, handlers.NewSampleHandler(eng))
	handlers.RegisterRecommendRoutes(api, handlers.NewRecommendHandler(eng))
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(st))
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(st))

	var sched *engine.Scheduler
	if cfg.Retention.Enabled {
		sched, err = engine.NewScheduler(
			st,
			cfg.Retention.MaxAge,
			cfg.Retention.Interval,
			logger.WithComponent(log, "retention"),
		)
		if err != nil {
			return fmt.Errorf("building scheduler: %w", err)
		}
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
