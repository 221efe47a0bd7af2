package roundrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	courseservice "github.com/fore-golf/fore-api/app/modules/course/application"
	roundevents "github.com/fore-golf/fore-api/app/modules/round/events"
	roundhandlers "github.com/fore-golf/fore-api/app/modules/round/infrastructure/handlers"
	userservice "github.com/fore-golf/fore-api/app/modules/user/application"
	"github.com/fore-golf/fore-api/internal/eventbus"
	"github.com/fore-golf/fore-api/internal/observability"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// RoundRouter subscribes the aggregate updaters to round events. Retries
// plus idempotent handlers give at-least-once delivery without losing
// updates under concurrent submissions.
type RoundRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	bus            eventbus.EventBus
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewRoundRouter creates a new RoundRouter.
func NewRoundRouter(
	logger *slog.Logger,
	router *message.Router,
	bus eventbus.EventBus,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *RoundRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &RoundRouter{
		logger:         logger,
		Router:         router,
		bus:            bus,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure adds middleware and registers the aggregate update handlers.
func (r *RoundRouter) Configure(
	userService userservice.Service,
	courseService courseservice.Service,
	handlerMetrics observability.Metrics,
) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := roundhandlers.NewRoundHandlers(userService, courseService, r.logger, handlerMetrics, r.tracer)
	return r.RegisterHandlers(handlers)
}

// RegisterHandlers subscribes both aggregate updaters to the persisted
// round topic. Each handler gets its own subscription so a failure in
// one does not block the other.
func (r *RoundRouter) RegisterHandlers(handlers roundhandlers.Handlers) error {
	eventsToHandlers := map[string]message.NoPublishHandlerFunc{
		"round.user_aggregate":   handlers.HandleRoundPersistedForUser,
		"round.course_aggregate": handlers.HandleRoundPersistedForCourse,
	}

	for handlerName, handlerFunc := range eventsToHandlers {
		r.Router.AddNoPublisherHandler(
			handlerName,
			roundevents.RoundPersistedV1,
			r.bus.Subscriber(),
			handlerFunc,
		)
	}
	return nil
}

// Run starts the router and blocks until the context is cancelled.
func (r *RoundRouter) Run(ctx context.Context) error {
	if err := r.Router.Run(ctx); err != nil {
		return fmt.Errorf("round router stopped: %w", err)
	}
	return nil
}

func (r *RoundRouter) Close() error {
	return r.Router.Close()
}
