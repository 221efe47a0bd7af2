package userservice

import (
	"context"
	"time"

	"github.com/fore-golf/fore-api/internal/types"
)

// RoundFetcher is the slice of the round repository this module consumes:
// resolving a window of round documents for their score differentials.
type RoundFetcher interface {
	FindRounds(ctx context.Context, ids []types.RoundID) ([]types.Round, error)
}

// Service is the user module's application surface.
type Service interface {
	GetUser(ctx context.Context, id types.UserID) (*types.User, error)
	GetHandicapHistory(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error)

	// UpdateAfterRound applies the user-side aggregate updates for a
	// freshly persisted round: prepend the round id and, once the user
	// has at least 3 rounds, recompute and append the handicap index.
	UpdateAfterRound(ctx context.Context, userID types.UserID, roundID types.RoundID, datePosted time.Time) error
}
