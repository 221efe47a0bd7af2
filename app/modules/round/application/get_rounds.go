package roundservice

import (
	"context"
	"fmt"

	"github.com/fore-golf/fore-api/internal/types"
)

// GetRounds fetches multiple rounds by id, preserving the caller's id
// order. With withCourseData set, each round's course document is
// resolved once per distinct course and embedded.
func (s *RoundService) GetRounds(ctx context.Context, ids []types.RoundID, withCourseData bool) ([]types.Round, error) {
	ctx, span := s.tracer.Start(ctx, "GetRounds")
	defer span.End()

	rounds, err := s.repo.FindRounds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rounds: %w", err)
	}

	if !withCourseData {
		return rounds, nil
	}

	courses := make(map[types.CourseID]*types.Course)
	for i := range rounds {
		courseID := rounds[i].CourseID
		course, ok := courses[courseID]
		if !ok {
			course, err = s.courses.GetCourse(ctx, courseID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve course %s: %w", courseID, err)
			}
			courses[courseID] = course
		}
		rounds[i].Course = course
	}

	return rounds, nil
}
