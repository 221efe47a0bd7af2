// Package app assembles the service: storage, event bus, module services,
// the watermill router for aggregate updates, and the HTTP servers.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/fore-golf/fore-api/app/api"
	courseservice "github.com/fore-golf/fore-api/app/modules/course/application"
	coursedb "github.com/fore-golf/fore-api/app/modules/course/infrastructure/repositories"
	roundservice "github.com/fore-golf/fore-api/app/modules/round/application"
	rounddb "github.com/fore-golf/fore-api/app/modules/round/infrastructure/repositories"
	roundrouter "github.com/fore-golf/fore-api/app/modules/round/infrastructure/router"
	userservice "github.com/fore-golf/fore-api/app/modules/user/application"
	userdb "github.com/fore-golf/fore-api/app/modules/user/infrastructure/repositories"
	"github.com/fore-golf/fore-api/config"
	"github.com/fore-golf/fore-api/internal/eventbus"
	"github.com/fore-golf/fore-api/internal/mongodb"
	"github.com/fore-golf/fore-api/internal/observability"
)

// App holds the assembled service.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	mongo       *mongodb.Client
	bus         eventbus.EventBus
	roundRouter *roundrouter.RoundRouter
	apiServer   *api.Server
	metricsSrv  *http.Server
	tracer      trace.Tracer
}

// NewApp wires every component from configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg.Observability.Environment)
	tracer := otel.Tracer("fore-api")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewPrometheusMetrics(registry, "fore")

	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mongodb: %w", err)
	}

	var bus eventbus.EventBus
	if cfg.NATS.URL != "" {
		bus, err = eventbus.NewNATSBus(ctx, cfg.NATS.URL, logger)
		if err != nil {
			_ = mongoClient.Close(ctx)
			return nil, fmt.Errorf("failed to initialize event bus: %w", err)
		}
	} else {
		logger.Info("No NATS URL configured, using in-process event bus")
		bus = eventbus.NewChannelBus(logger)
	}

	userRepo := &userdb.UserDBImpl{Collection: mongoClient.Collection("users")}
	courseRepo := &coursedb.CourseDBImpl{Collection: mongoClient.Collection("courses")}
	roundRepo := &rounddb.RoundDBImpl{Collection: mongoClient.Collection("rounds")}

	userService := userservice.NewUserService(userRepo, roundRepo, logger, metrics, tracer, cfg.Handicap.WindowSize)
	courseService := courseservice.NewCourseService(courseRepo, logger, metrics, tracer)
	roundService := roundservice.NewRoundService(roundRepo, userService, courseService, bus, logger, metrics, tracer)

	watermillRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		_ = bus.Close()
		_ = mongoClient.Close(ctx)
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	rr := roundrouter.NewRoundRouter(logger, watermillRouter, bus, tracer, registry)
	if err := rr.Configure(userService, courseService, metrics); err != nil {
		_ = bus.Close()
		_ = mongoClient.Close(ctx)
		return nil, fmt.Errorf("failed to configure round router: %w", err)
	}

	apiServer := api.NewServer(cfg, roundService, userService, courseService, logger)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &App{
		Config:      cfg,
		Logger:      logger,
		mongo:       mongoClient,
		bus:         bus,
		roundRouter: rr,
		apiServer:   apiServer,
		metricsSrv: &http.Server{
			Addr:              cfg.Observability.MetricsAddress,
			Handler:           metricsMux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		tracer: tracer,
	}, nil
}

// Run starts the watermill router and both HTTP listeners, then blocks
// until the context is cancelled or a component fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	go func() {
		errCh <- a.roundRouter.Run(ctx)
	}()

	go func() {
		a.Logger.Info("Metrics server listening", slog.String("addr", a.metricsSrv.Addr))
		if err := a.metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server stopped: %w", err)
			return
		}
		errCh <- nil
	}()

	go func() {
		errCh <- a.apiServer.Start()
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown drains the HTTP servers and closes the bus and storage.
func (a *App) Shutdown(ctx context.Context) {
	if err := a.apiServer.Shutdown(ctx); err != nil {
		a.Logger.Error("Failed to shut down API server", slog.Any("error", err))
	}
	if err := a.metricsSrv.Shutdown(ctx); err != nil {
		a.Logger.Error("Failed to shut down metrics server", slog.Any("error", err))
	}
	if err := a.roundRouter.Close(); err != nil {
		a.Logger.Error("Failed to close message router", slog.Any("error", err))
	}
	if err := a.bus.Close(); err != nil {
		a.Logger.Error("Failed to close event bus", slog.Any("error", err))
	}
	if err := a.mongo.Close(ctx); err != nil {
		a.Logger.Error("Failed to close mongodb client", slog.Any("error", err))
	}
}
