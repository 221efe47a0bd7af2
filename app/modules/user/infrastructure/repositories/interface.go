package userdb

import (
	"context"

	"github.com/fore-golf/fore-api/internal/types"
)

// Repository is the user collection access used by this service. All
// array mutations are single atomic positional appends; the user document
// is never rewritten wholesale here.
type Repository interface {
	// FindUser resolves a user by id. Returns *types.NotFoundError when
	// the id does not resolve.
	FindUser(ctx context.Context, id types.UserID) (*types.User, error)

	// PrependRound atomically inserts a round id at the head of the
	// user's rounds array and returns the user document as of after that
	// write. Re-applying the same round id returns the current document
	// without modifying it.
	PrependRound(ctx context.Context, userID types.UserID, roundID types.RoundID) (*types.User, error)

	// AppendHandicapData appends one handicap_data entry. An entry with
	// the same date is not appended twice.
	AppendHandicapData(ctx context.Context, userID types.UserID, entry types.HandicapEntry) error
}
