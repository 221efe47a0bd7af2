package rounddb

import (
	"context"

	"github.com/fore-golf/fore-api/internal/types"
)

// Repository is the round collection access used by this service. Rounds
// are written once at submission and never updated.
type Repository interface {
	// InsertRound persists a new round document and returns its id.
	InsertRound(ctx context.Context, round *types.Round) (types.RoundID, error)

	// FindRounds fetches the rounds for the given ids, preserving the
	// order of ids. Unknown ids are skipped.
	FindRounds(ctx context.Context, ids []types.RoundID) ([]types.Round, error)
}
