package userservice

import (
	"context"
	"sync"

	"github.com/fore-golf/fore-api/internal/types"
)

// ------------------------
// Fake User Repository
// ------------------------

// FakeUserRepository mimics the store's guarded array appends in memory:
// a round id is prepended at most once, a handicap entry is appended at
// most once per date, and PrependRound returns the document as of after
// its own write.
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[types.UserID]*types.User

	FindUserFunc func(ctx context.Context, id types.UserID) (*types.User, error)
}

func NewFakeUserRepository(users ...*types.User) *FakeUserRepository {
	repo := &FakeUserRepository{users: map[types.UserID]*types.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *FakeUserRepository) FindUser(ctx context.Context, id types.UserID) (*types.User, error) {
	if f.FindUserFunc != nil {
		return f.FindUserFunc(ctx, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, &types.NotFoundError{Entity: "user", ID: id.String()}
	}
	return copyUser(user), nil
}

func (f *FakeUserRepository) PrependRound(ctx context.Context, userID types.UserID, roundID types.RoundID) (*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, &types.NotFoundError{Entity: "user", ID: userID.String()}
	}
	for _, id := range user.Rounds {
		if id == roundID {
			return copyUser(user), nil
		}
	}
	user.Rounds = append([]types.RoundID{roundID}, user.Rounds...)
	return copyUser(user), nil
}

func (f *FakeUserRepository) AppendHandicapData(ctx context.Context, userID types.UserID, entry types.HandicapEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return &types.NotFoundError{Entity: "user", ID: userID.String()}
	}
	for _, existing := range user.HandicapData {
		if existing.Date.Equal(entry.Date) {
			return nil
		}
	}
	user.HandicapData = append(user.HandicapData, entry)
	return nil
}

func (f *FakeUserRepository) Snapshot(id types.UserID) *types.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyUser(f.users[id])
}

func copyUser(user *types.User) *types.User {
	if user == nil {
		return nil
	}
	out := *user
	out.Rounds = append([]types.RoundID(nil), user.Rounds...)
	out.HandicapData = append([]types.HandicapEntry(nil), user.HandicapData...)
	return &out
}

// ------------------------
// Fake Round Fetcher
// ------------------------

// FakeRoundFetcher resolves round ids against a fixed differential map
// and records the id slices it was asked for.
type FakeRoundFetcher struct {
	mu            sync.Mutex
	differentials map[types.RoundID]float64
	requests      [][]types.RoundID

	FindRoundsFunc func(ctx context.Context, ids []types.RoundID) ([]types.Round, error)
}

func NewFakeRoundFetcher(differentials map[types.RoundID]float64) *FakeRoundFetcher {
	return &FakeRoundFetcher{differentials: differentials}
}

func (f *FakeRoundFetcher) FindRounds(ctx context.Context, ids []types.RoundID) ([]types.Round, error) {
	if f.FindRoundsFunc != nil {
		return f.FindRoundsFunc(ctx, ids)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, append([]types.RoundID(nil), ids...))
	var rounds []types.Round
	for _, id := range ids {
		if diff, ok := f.differentials[id]; ok {
			rounds = append(rounds, types.Round{ID: id, ScoreDifferential: diff})
		}
	}
	return rounds, nil
}

func (f *FakeRoundFetcher) Requests() [][]types.RoundID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]types.RoundID, len(f.requests))
	copy(out, f.requests)
	return out
}

var _ RoundFetcher = (*FakeRoundFetcher)(nil)
