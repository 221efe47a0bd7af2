// Package courseservice resolves courses and maintains the course-side
// round aggregate.
package courseservice

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	coursedb "github.com/fore-golf/fore-api/app/modules/course/infrastructure/repositories"
	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/observability"
	"github.com/fore-golf/fore-api/internal/types"
)

// CourseService implements the Service interface.
type CourseService struct {
	repo    coursedb.Repository
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
}

// NewCourseService creates a new CourseService.
func NewCourseService(
	repo coursedb.Repository,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) *CourseService {
	return &CourseService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// GetCourse resolves a course by id.
func (s *CourseService) GetCourse(ctx context.Context, id types.CourseID) (*types.Course, error) {
	return s.repo.FindCourse(ctx, id)
}

// AttachRound prepends the round id to the course's rounds list. It is
// the course-side half of the post-submission aggregate update.
func (s *CourseService) AttachRound(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error {
	ctx, span := s.tracer.Start(ctx, "AttachRound")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "course", "AttachRound")
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "course", "AttachRound", time.Since(start))
	}()

	if err := s.repo.PrependRound(ctx, courseID, roundID); err != nil {
		s.metrics.RecordOperationFailure(ctx, "course", "AttachRound")
		s.logger.ErrorContext(ctx, "Failed to attach round to course",
			attr.ExtractCorrelationID(ctx),
			attr.CourseID(courseID),
			attr.RoundID(roundID),
			attr.Error(err),
		)
		return err
	}

	s.metrics.RecordOperationSuccess(ctx, "course", "AttachRound")
	s.logger.InfoContext(ctx, "Round attached to course",
		attr.ExtractCorrelationID(ctx),
		attr.CourseID(courseID),
		attr.RoundID(roundID),
	)
	return nil
}
