package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records service operation and event handler outcomes.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, module, operation string)
	RecordOperationSuccess(ctx context.Context, module, operation string)
	RecordOperationFailure(ctx context.Context, module, operation string)
	RecordOperationDuration(ctx context.Context, module, operation string, d time.Duration)

	RecordHandlerAttempt(handler string)
	RecordHandlerSuccess(handler string)
	RecordHandlerFailure(handler string)
	RecordHandlerDuration(handler string, seconds float64)

	RecordRoundSubmitted(ctx context.Context, mode string)
	RecordHandicapComputed(ctx context.Context)
}

type prometheusMetrics struct {
	operationAttempts  *prometheus.CounterVec
	operationSuccesses *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec

	handlerAttempts  *prometheus.CounterVec
	handlerSuccesses *prometheus.CounterVec
	handlerFailures  *prometheus.CounterVec
	handlerDuration  *prometheus.HistogramVec

	roundsSubmitted   *prometheus.CounterVec
	handicapsComputed prometheus.Counter
}

// NewPrometheusMetrics registers and returns the service metrics on the
// given registry.
func NewPrometheusMetrics(registry *prometheus.Registry, namespace string) Metrics {
	m := &prometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operation attempts.",
		}, []string{"module", "operation"}),
		operationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_successes_total",
			Help:      "Service operations that completed successfully.",
		}, []string{"module", "operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Service operations that failed.",
		}, []string{"module", "operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"module", "operation"}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_attempts_total",
			Help:      "Event handler invocations.",
		}, []string{"handler"}),
		handlerSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_successes_total",
			Help:      "Event handler invocations that succeeded.",
		}, []string{"handler"}),
		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Event handler invocations that failed.",
		}, []string{"handler"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "handler_duration_seconds",
			Help:      "Event handler duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
		roundsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_submitted_total",
			Help:      "Rounds persisted, by scorecard mode.",
		}, []string{"mode"}),
		handicapsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handicaps_computed_total",
			Help:      "Handicap index recomputations appended to handicap_data.",
		}),
	}

	registry.MustRegister(
		m.operationAttempts, m.operationSuccesses, m.operationFailures, m.operationDuration,
		m.handlerAttempts, m.handlerSuccesses, m.handlerFailures, m.handlerDuration,
		m.roundsSubmitted, m.handicapsComputed,
	)
	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, module, operation string) {
	m.operationAttempts.WithLabelValues(module, operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, module, operation string) {
	m.operationSuccesses.WithLabelValues(module, operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, module, operation string) {
	m.operationFailures.WithLabelValues(module, operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, module, operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(module, operation).Observe(d.Seconds())
}

func (m *prometheusMetrics) RecordHandlerAttempt(handler string) {
	m.handlerAttempts.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerSuccess(handler string) {
	m.handlerSuccesses.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerFailure(handler string) {
	m.handlerFailures.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerDuration(handler string, seconds float64) {
	m.handlerDuration.WithLabelValues(handler).Observe(seconds)
}

func (m *prometheusMetrics) RecordRoundSubmitted(_ context.Context, mode string) {
	m.roundsSubmitted.WithLabelValues(mode).Inc()
}

func (m *prometheusMetrics) RecordHandicapComputed(_ context.Context) {
	m.handicapsComputed.Inc()
}

// NoOpMetrics satisfies Metrics and records nothing. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (NoOpMetrics) RecordHandlerAttempt(string)                                            {}
func (NoOpMetrics) RecordHandlerSuccess(string)                                            {}
func (NoOpMetrics) RecordHandlerFailure(string)                                            {}
func (NoOpMetrics) RecordHandlerDuration(string, float64)                                  {}
func (NoOpMetrics) RecordRoundSubmitted(context.Context, string)                           {}
func (NoOpMetrics) RecordHandicapComputed(context.Context)                                 {}
