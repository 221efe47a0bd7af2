package roundservice

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/fore-golf/fore-api/internal/types"
)

// ------------------------
// Fake Round Repository
// ------------------------

// FakeRoundRepository provides a programmable stub for the round
// repository. It allows injecting custom behavior per method and records
// inserted rounds.
type FakeRoundRepository struct {
	mu       sync.Mutex
	inserted []types.Round
	nextID   int

	InsertRoundFunc func(ctx context.Context, round *types.Round) (types.RoundID, error)
	FindRoundsFunc  func(ctx context.Context, ids []types.RoundID) ([]types.Round, error)
}

func NewFakeRoundRepository() *FakeRoundRepository {
	return &FakeRoundRepository{}
}

func (f *FakeRoundRepository) InsertRound(ctx context.Context, round *types.Round) (types.RoundID, error) {
	if f.InsertRoundFunc != nil {
		return f.InsertRoundFunc(ctx, round)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := types.RoundID(fmt.Sprintf("round-%d", f.nextID))
	stored := *round
	stored.ID = id
	f.inserted = append(f.inserted, stored)
	return id, nil
}

func (f *FakeRoundRepository) FindRounds(ctx context.Context, ids []types.RoundID) ([]types.Round, error) {
	if f.FindRoundsFunc != nil {
		return f.FindRoundsFunc(ctx, ids)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	byID := make(map[types.RoundID]types.Round, len(f.inserted))
	for _, round := range f.inserted {
		byID[round.ID] = round
	}
	var rounds []types.Round
	for _, id := range ids {
		if round, ok := byID[id]; ok {
			rounds = append(rounds, round)
		}
	}
	return rounds, nil
}

func (f *FakeRoundRepository) Inserted() []types.Round {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.Round, len(f.inserted))
	copy(out, f.inserted)
	return out
}

// ------------------------
// Fake Directories
// ------------------------

type FakeUserDirectory struct {
	GetUserFunc func(ctx context.Context, id types.UserID) (*types.User, error)
}

func (f *FakeUserDirectory) GetUser(ctx context.Context, id types.UserID) (*types.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return &types.User{ID: id}, nil
}

type FakeCourseDirectory struct {
	calls          int
	GetCourseFunc func(ctx context.Context, id types.CourseID) (*types.Course, error)
}

func (f *FakeCourseDirectory) GetCourse(ctx context.Context, id types.CourseID) (*types.Course, error) {
	f.calls++
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, id)
	}
	return &types.Course{ID: id, NumHoles: 18}, nil
}

// ------------------------
// Fake Event Bus
// ------------------------

// FakeEventBus records published messages per topic.
type FakeEventBus struct {
	mu        sync.Mutex
	published map[string][]*message.Message

	PublishFunc func(topic string, messages ...*message.Message) error
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{published: map[string][]*message.Message{}}
}

func (f *FakeEventBus) Publish(topic string, messages ...*message.Message) error {
	if f.PublishFunc != nil {
		return f.PublishFunc(topic, messages...)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published[topic] = append(f.published[topic], messages...)
	return nil
}

func (f *FakeEventBus) Published(topic string) []*message.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.published[topic]
}

func (f *FakeEventBus) Publisher() message.Publisher   { return nil }
func (f *FakeEventBus) Subscriber() message.Subscriber { return nil }
func (f *FakeEventBus) Close() error                   { return nil }
