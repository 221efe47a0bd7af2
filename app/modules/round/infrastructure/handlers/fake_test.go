package roundhandlers

import (
	"context"
	"time"

	courseservice "github.com/fore-golf/fore-api/app/modules/course/application"
	userservice "github.com/fore-golf/fore-api/app/modules/user/application"
	"github.com/fore-golf/fore-api/internal/types"
)

// ------------------------
// Fake User Service
// ------------------------

// FakeUserService provides a programmable stub for the userservice.Service
// interface and tracks calls via Trace.
type FakeUserService struct {
	trace []string

	GetUserFunc            func(ctx context.Context, id types.UserID) (*types.User, error)
	GetHandicapHistoryFunc func(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error)
	UpdateAfterRoundFunc   func(ctx context.Context, userID types.UserID, roundID types.RoundID, datePosted time.Time) error
}

func NewFakeUserService() *FakeUserService {
	return &FakeUserService{trace: []string{}}
}

func (f *FakeUserService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserService) GetUser(ctx context.Context, id types.UserID) (*types.User, error) {
	f.record("GetUser")
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return &types.User{ID: id}, nil
}

func (f *FakeUserService) GetHandicapHistory(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error) {
	f.record("GetHandicapHistory")
	if f.GetHandicapHistoryFunc != nil {
		return f.GetHandicapHistoryFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeUserService) UpdateAfterRound(ctx context.Context, userID types.UserID, roundID types.RoundID, datePosted time.Time) error {
	f.record("UpdateAfterRound")
	if f.UpdateAfterRoundFunc != nil {
		return f.UpdateAfterRoundFunc(ctx, userID, roundID, datePosted)
	}
	return nil
}

var _ userservice.Service = (*FakeUserService)(nil)

// ------------------------
// Fake Course Service
// ------------------------

type FakeCourseService struct {
	trace []string

	GetCourseFunc   func(ctx context.Context, id types.CourseID) (*types.Course, error)
	AttachRoundFunc func(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error
}

func NewFakeCourseService() *FakeCourseService {
	return &FakeCourseService{trace: []string{}}
}

func (f *FakeCourseService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCourseService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCourseService) GetCourse(ctx context.Context, id types.CourseID) (*types.Course, error) {
	f.record("GetCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, id)
	}
	return &types.Course{ID: id}, nil
}

func (f *FakeCourseService) AttachRound(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error {
	f.record("AttachRound")
	if f.AttachRoundFunc != nil {
		return f.AttachRoundFunc(ctx, courseID, roundID)
	}
	return nil
}

var _ courseservice.Service = (*FakeCourseService)(nil)
