// Package roundservice implements the round submission pipeline: the
// synchronous validate/normalize/compute/persist path and the publication
// of the event that drives the eventually consistent aggregate updates.
package roundservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	rounddb "github.com/fore-golf/fore-api/app/modules/round/infrastructure/repositories"
	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/eventbus"
	"github.com/fore-golf/fore-api/internal/observability"
	"github.com/fore-golf/fore-api/internal/results"
	"github.com/fore-golf/fore-api/internal/types"
)

// RoundOperationResult is the outcome of a round submission: either the
// persisted round or a business failure payload.
type RoundOperationResult = results.OperationResult[types.Round, SubmissionFailure]

// RoundService implements the Service interface.
type RoundService struct {
	repo     rounddb.Repository
	users    UserDirectory
	courses  CourseDirectory
	eventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  observability.Metrics
	tracer   trace.Tracer
	now      func() time.Time
}

// NewRoundService creates a new RoundService.
func NewRoundService(
	repo rounddb.Repository,
	users UserDirectory,
	courses CourseDirectory,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) *RoundService {
	return &RoundService{
		repo:     repo,
		users:    users,
		courses:  courses,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// operationFunc is the generic signature for wrapped service operations.
type operationFunc func(ctx context.Context) (RoundOperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics and panic
// recovery. Business failures come back inside the result; errors are
// infrastructure problems.
func (s *RoundService) withTelemetry(ctx context.Context, operationName string, op operationFunc) (result RoundOperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName)
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "round", operationName)
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "round", operationName, time.Since(start))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, "round", operationName)
			span.RecordError(err)
			result = RoundOperationResult{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrapped := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrapped),
		)
		s.metrics.RecordOperationFailure(ctx, "round", operationName)
		span.RecordError(wrapped)
		return result, wrapped
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("failure_code", result.Failure.Code),
			attr.String("failure_reason", result.Failure.Reason),
		)
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, "round", operationName)
	}

	return result, nil
}
