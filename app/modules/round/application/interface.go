package roundservice

import (
	"context"

	"github.com/fore-golf/fore-api/internal/types"
)

// UserDirectory is the slice of the user module this pipeline consumes.
type UserDirectory interface {
	GetUser(ctx context.Context, id types.UserID) (*types.User, error)
}

// CourseDirectory is the slice of the course module this pipeline
// consumes.
type CourseDirectory interface {
	GetCourse(ctx context.Context, id types.CourseID) (*types.Course, error)
}

// SubmitRoundInput is the caller-supplied submission payload. Scorecard
// keys depend on Mode: "1".."num_holes", {"front","back"}, or {"total"}.
type SubmitRoundInput struct {
	UserID      types.UserID        `json:"user_id"`
	CourseID    types.CourseID      `json:"course_id"`
	TeeBoxIndex *int                `json:"tee_box_index"`
	Caption     string              `json:"caption"`
	Mode        types.ScorecardMode `json:"scorecard_mode"`
	Scorecard   map[string]int      `json:"scorecard"`
}

// Failure codes for round submission.
const (
	FailureNotFound     = "not_found"
	FailureInvalidInput = "invalid_input"
)

// SubmissionFailure is the business-failure payload of a rejected
// submission. Reason identifies the precondition that failed.
type SubmissionFailure struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// Service is the round module's application surface.
type Service interface {
	SubmitRound(ctx context.Context, input SubmitRoundInput) (RoundOperationResult, error)
	GetRounds(ctx context.Context, ids []types.RoundID, withCourseData bool) ([]types.Round, error)
	AutofillScores(ctx context.Context, input AutofillInput) (map[string]int, error)
}
