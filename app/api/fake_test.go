package api

import (
	"context"
	"time"

	courseservice "github.com/fore-golf/fore-api/app/modules/course/application"
	roundservice "github.com/fore-golf/fore-api/app/modules/round/application"
	userservice "github.com/fore-golf/fore-api/app/modules/user/application"
	"github.com/fore-golf/fore-api/internal/types"
)

// FakeRoundService provides a programmable stub for the round service.
type FakeRoundService struct {
	SubmitRoundFunc    func(ctx context.Context, input roundservice.SubmitRoundInput) (roundservice.RoundOperationResult, error)
	GetRoundsFunc      func(ctx context.Context, ids []types.RoundID, withCourseData bool) ([]types.Round, error)
	AutofillScoresFunc func(ctx context.Context, input roundservice.AutofillInput) (map[string]int, error)
}

func (f *FakeRoundService) SubmitRound(ctx context.Context, input roundservice.SubmitRoundInput) (roundservice.RoundOperationResult, error) {
	if f.SubmitRoundFunc != nil {
		return f.SubmitRoundFunc(ctx, input)
	}
	return roundservice.RoundOperationResult{}, nil
}

func (f *FakeRoundService) GetRounds(ctx context.Context, ids []types.RoundID, withCourseData bool) ([]types.Round, error) {
	if f.GetRoundsFunc != nil {
		return f.GetRoundsFunc(ctx, ids, withCourseData)
	}
	return nil, nil
}

func (f *FakeRoundService) AutofillScores(ctx context.Context, input roundservice.AutofillInput) (map[string]int, error) {
	if f.AutofillScoresFunc != nil {
		return f.AutofillScoresFunc(ctx, input)
	}
	return nil, nil
}

var _ roundservice.Service = (*FakeRoundService)(nil)

// FakeUserService provides a programmable stub for the user service.
type FakeUserService struct {
	GetUserFunc            func(ctx context.Context, id types.UserID) (*types.User, error)
	GetHandicapHistoryFunc func(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error)
	UpdateAfterRoundFunc   func(ctx context.Context, userID types.UserID, roundID types.RoundID, datePosted time.Time) error
}

func (f *FakeUserService) GetUser(ctx context.Context, id types.UserID) (*types.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return &types.User{ID: id}, nil
}

func (f *FakeUserService) GetHandicapHistory(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error) {
	if f.GetHandicapHistoryFunc != nil {
		return f.GetHandicapHistoryFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeUserService) UpdateAfterRound(ctx context.Context, userID types.UserID, roundID types.RoundID, datePosted time.Time) error {
	if f.UpdateAfterRoundFunc != nil {
		return f.UpdateAfterRoundFunc(ctx, userID, roundID, datePosted)
	}
	return nil
}

var _ userservice.Service = (*FakeUserService)(nil)

// FakeCourseService provides a programmable stub for the course service.
type FakeCourseService struct {
	GetCourseFunc   func(ctx context.Context, id types.CourseID) (*types.Course, error)
	AttachRoundFunc func(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error
}

func (f *FakeCourseService) GetCourse(ctx context.Context, id types.CourseID) (*types.Course, error) {
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, id)
	}
	return &types.Course{ID: id}, nil
}

func (f *FakeCourseService) AttachRound(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error {
	if f.AttachRoundFunc != nil {
		return f.AttachRoundFunc(ctx, courseID, roundID)
	}
	return nil
}

var _ courseservice.Service = (*FakeCourseService)(nil)
