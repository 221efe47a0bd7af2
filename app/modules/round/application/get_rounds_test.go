package roundservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fore-golf/fore-api/internal/types"
)

func TestGetRoundsPreservesOrder(t *testing.T) {
	repo := NewFakeRoundRepository()
	repo.FindRoundsFunc = func(ctx context.Context, ids []types.RoundID) ([]types.Round, error) {
		rounds := make([]types.Round, 0, len(ids))
		for _, id := range ids {
			rounds = append(rounds, types.Round{ID: id, CourseID: "course-1"})
		}
		return rounds, nil
	}
	svc := newTestService(repo, &FakeUserDirectory{}, &FakeCourseDirectory{}, NewFakeEventBus())

	rounds, err := svc.GetRounds(context.Background(), []types.RoundID{"r3", "r1", "r2"}, false)
	require.NoError(t, err)
	require.Len(t, rounds, 3)
	assert.Equal(t, types.RoundID("r3"), rounds[0].ID)
	assert.Equal(t, types.RoundID("r1"), rounds[1].ID)
	assert.Equal(t, types.RoundID("r2"), rounds[2].ID)
	assert.Nil(t, rounds[0].Course)
}

func TestGetRoundsResolvesEachCourseOnce(t *testing.T) {
	repo := NewFakeRoundRepository()
	repo.FindRoundsFunc = func(ctx context.Context, ids []types.RoundID) ([]types.Round, error) {
		return []types.Round{
			{ID: "r1", CourseID: "course-1"},
			{ID: "r2", CourseID: "course-1"},
			{ID: "r3", CourseID: "course-2"},
		}, nil
	}
	courses := &FakeCourseDirectory{
		GetCourseFunc: func(ctx context.Context, id types.CourseID) (*types.Course, error) {
			return &types.Course{ID: id, NumHoles: 18}, nil
		},
	}
	svc := newTestService(repo, &FakeUserDirectory{}, courses, NewFakeEventBus())

	rounds, err := svc.GetRounds(context.Background(), []types.RoundID{"r1", "r2", "r3"}, true)
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	// Two distinct courses in three rounds: two lookups, shared pointers.
	assert.Equal(t, 2, courses.calls)
	require.NotNil(t, rounds[0].Course)
	assert.Same(t, rounds[0].Course, rounds[1].Course)
	assert.Equal(t, types.CourseID("course-2"), rounds[2].Course.ID)
}
