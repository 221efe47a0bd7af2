package courseservice

import (
	"context"

	"github.com/fore-golf/fore-api/internal/types"
)

// Service is the course module's application surface.
type Service interface {
	GetCourse(ctx context.Context, id types.CourseID) (*types.Course, error)
	AttachRound(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error
}
