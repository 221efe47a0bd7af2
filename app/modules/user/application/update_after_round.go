package userservice

import (
	"context"
	"fmt"
	"time"

	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/types"
)

// minRoundsForHandicap is the smallest round count for which a handicap
// index is defined.
const minRoundsForHandicap = 3

// UpdateAfterRound prepends the new round id to the user's rounds list
// and, when the user has enough rounds, recomputes the handicap index
// over the most recent window and appends it to handicap_data.
//
// The prepend returns the user document as of after its own write, so the
// recomputation always sees the triggering round. Both mutations are
// single atomic array appends against the store; a concurrent submission
// for the same user cannot erase either one.
func (s *UserService) UpdateAfterRound(ctx context.Context, userID types.UserID, roundID types.RoundID, datePosted time.Time) error {
	return s.withTelemetry(ctx, "UpdateAfterRound", func(ctx context.Context) error {
		user, err := s.repo.PrependRound(ctx, userID, roundID)
		if err != nil {
			return fmt.Errorf("failed to prepend round: %w", err)
		}

		s.logger.InfoContext(ctx, "Round added to user history",
			attr.ExtractCorrelationID(ctx),
			attr.UserID(userID),
			attr.RoundID(roundID),
			attr.Int("total_rounds", len(user.Rounds)),
		)

		if len(user.Rounds) < minRoundsForHandicap {
			return nil
		}

		windowIDs := user.Rounds
		if len(windowIDs) > s.windowSize {
			windowIDs = windowIDs[:s.windowSize]
		}

		rounds, err := s.rounds.FindRounds(ctx, windowIDs)
		if err != nil {
			return fmt.Errorf("failed to fetch rounds for handicap window: %w", err)
		}

		differentials := make([]float64, 0, len(rounds))
		for _, round := range rounds {
			differentials = append(differentials, round.ScoreDifferential)
		}

		index, ok := CalculateHandicapIndex(differentials)
		if !ok {
			// Under 3 resolvable rounds the index stays undetermined.
			s.logger.WarnContext(ctx, "Handicap undetermined despite round count",
				attr.ExtractCorrelationID(ctx),
				attr.UserID(userID),
				attr.Int("window_rounds", len(rounds)),
			)
			return nil
		}

		entry := types.HandicapEntry{Date: datePosted, Handicap: index}
		if err := s.repo.AppendHandicapData(ctx, userID, entry); err != nil {
			return fmt.Errorf("failed to append handicap data: %w", err)
		}

		s.metrics.RecordHandicapComputed(ctx)
		s.logger.InfoContext(ctx, "Handicap index updated",
			attr.ExtractCorrelationID(ctx),
			attr.UserID(userID),
			attr.Float64("handicap", index),
			attr.Int("differentials", len(differentials)),
		)
		return nil
	})
}
