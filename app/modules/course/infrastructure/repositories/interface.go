package coursedb

import (
	"context"

	"github.com/fore-golf/fore-api/internal/types"
)

// Repository is the course collection access used by this service.
type Repository interface {
	// FindCourse resolves a course by id. Returns *types.NotFoundError
	// when the id does not resolve.
	FindCourse(ctx context.Context, id types.CourseID) (*types.Course, error)

	// PrependRound atomically inserts a round id at the head of the
	// course's rounds array. Re-applying the same round id is a no-op.
	PrependRound(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error
}
