package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"fixtureplanner/docs"
	"fixtureplanner/internal/assets"
	"fixtureplanner/internal/config"
	handlers "fixtureplanner/internal/http/handler"
	"fixtureplanner/internal/http/middleware"
	"fixtureplanner/internal/log"
	tracing "fixtureplanner/internal/otel"
	"fixtureplanner/internal/service"
)

// @title Fixture Planner API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log.Setup(cfg.Debug, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	shutdownTracing, err := tracing.Init(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Assets.Backend).Msg("failed to initialize asset store")
	}

	app, err := newApp(cfg, store, service.NewEchoGenerator(), newRegistry())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build http app")
	}

	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Bool("debug", cfg.Debug).
			Str("assets_backend", cfg.Assets.Backend).
			Msg("server starting")

		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown error")
	}

	log.Info().Msg("server stopped")
}

func newStore(cfg *config.AppConfig) (assets.Store, error) {
	switch cfg.Assets.Backend {
	case config.AssetsBackendLocal:
		return assets.NewLocal(cfg.Assets.StaticDir)
	case config.AssetsBackendMinIO:
		return assets.NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown assets backend: %q", cfg.Assets.Backend)
	}
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func newApp(cfg *config.AppConfig, store assets.Store, gen service.FixtureGenerator, reg *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "fixtureplanner",
		ErrorHandler:          handlers.ErrorHandler(cfg.Debug),
		BodyLimit:             cfg.Server.BodyLimit,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: !cfg.Debug,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	// RequestID first so every later middleware and the error handler can read it
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log.Logger()))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, store, cfg.Assets.IndexFile, gen)

	app.Get(middleware.MetricsPath, middleware.MetricsHandler(reg))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Static routes last: the asset route matches every GET path
	handlers.RegisterStatic(app, store, cfg.Assets.IndexFile)

	return app, nil
}
