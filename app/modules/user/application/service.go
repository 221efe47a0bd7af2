// Package userservice maintains the user aggregate: the rounds list and
// the append-only handicap_data series derived from it.
package userservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	userdb "github.com/fore-golf/fore-api/app/modules/user/infrastructure/repositories"
	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/observability"
	"github.com/fore-golf/fore-api/internal/types"
)

// UserService implements the Service interface.
type UserService struct {
	repo       userdb.Repository
	rounds     RoundFetcher
	logger     *slog.Logger
	metrics    observability.Metrics
	tracer     trace.Tracer
	windowSize int
}

// NewUserService creates a new UserService. windowSize bounds how many of
// the user's most recent rounds feed a handicap recomputation.
func NewUserService(
	repo userdb.Repository,
	rounds RoundFetcher,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	windowSize int,
) *UserService {
	if windowSize <= 0 {
		windowSize = 20
	}
	return &UserService{
		repo:       repo,
		rounds:     rounds,
		logger:     logger,
		metrics:    metrics,
		tracer:     tracer,
		windowSize: windowSize,
	}
}

// GetUser resolves a user by id.
func (s *UserService) GetUser(ctx context.Context, id types.UserID) (*types.User, error) {
	return s.repo.FindUser(ctx, id)
}

// GetHandicapHistory returns the user's handicap_data series in
// chronological order.
func (s *UserService) GetHandicapHistory(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error) {
	user, err := s.repo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.HandicapData, nil
}

// operationFunc is the generic signature for wrapped service operations.
type operationFunc func(ctx context.Context) error

// withTelemetry wraps an operation with tracing, metrics and panic
// recovery.
func (s *UserService) withTelemetry(ctx context.Context, operationName string, op operationFunc) (err error) {
	ctx, span := s.tracer.Start(ctx, operationName)
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "user", operationName)
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "user", operationName, time.Since(start))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, "user", operationName)
			span.RecordError(err)
		}
	}()

	if err = op(ctx); err != nil {
		s.metrics.RecordOperationFailure(ctx, "user", operationName)
		span.RecordError(err)
		return fmt.Errorf("%s: %w", operationName, err)
	}

	s.metrics.RecordOperationSuccess(ctx, "user", operationName)
	return nil
}
