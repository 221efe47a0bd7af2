package roundservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	roundevents "github.com/fore-golf/fore-api/app/modules/round/events"
	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/results"
	"github.com/fore-golf/fore-api/internal/types"
)

// SubmitRound runs the synchronous portion of the submission pipeline:
// resolve user and course, validate and normalize the scorecard, compute
// the score differential against the caller's current handicap, and
// persist the round. Its success is what the caller's response depends
// on.
//
// The aggregate updates (user rounds/handicap_data, course rounds) are
// not performed here: a rounds.persisted.v1 event is published and the
// background handlers apply them with at-least-once delivery. Their
// failure never invalidates the returned round.
func (s *RoundService) SubmitRound(ctx context.Context, input SubmitRoundInput) (RoundOperationResult, error) {
	return s.withTelemetry(ctx, "SubmitRound", func(ctx context.Context) (RoundOperationResult, error) {
		user, err := s.users.GetUser(ctx, input.UserID)
		if err != nil {
			if failure, ok := classify(err); ok {
				return results.FailureResult[types.Round, SubmissionFailure](failure), nil
			}
			return RoundOperationResult{}, err
		}

		course, err := s.courses.GetCourse(ctx, input.CourseID)
		if err != nil {
			if failure, ok := classify(err); ok {
				return results.FailureResult[types.Round, SubmissionFailure](failure), nil
			}
			return RoundOperationResult{}, err
		}

		if input.TeeBoxIndex != nil {
			if *input.TeeBoxIndex < 0 || *input.TeeBoxIndex >= len(course.TeeBoxes) {
				return results.FailureResult[types.Round, SubmissionFailure](SubmissionFailure{
					Code:   FailureInvalidInput,
					Reason: "provided tee box index is out of range",
				}), nil
			}
		}

		if err := ValidateScorecard(input.Mode, input.Scorecard, course.NumHoles); err != nil {
			return results.FailureResult[types.Round, SubmissionFailure](SubmissionFailure{
				Code:   FailureInvalidInput,
				Reason: err.Error(),
			}), nil
		}

		scorecard := NormalizeScorecard(input.Mode, input.Scorecard, input.TeeBoxIndex, course)

		currentHandicap := user.CurrentHandicap()
		differential := CalculateScoreDifferential(scorecard, input.TeeBoxIndex, course, currentHandicap, 0)

		round := types.Round{
			UserID:            input.UserID,
			CourseID:          input.CourseID,
			TeeBoxIndex:       input.TeeBoxIndex,
			Caption:           input.Caption,
			ScorecardMode:     input.Mode,
			Scorecard:         scorecard,
			ScoreDifferential: differential,
			DatePosted:        s.now(),
		}

		roundID, err := s.repo.InsertRound(ctx, &round)
		if err != nil {
			return RoundOperationResult{}, fmt.Errorf("failed to persist round: %w", err)
		}
		round.ID = roundID

		s.metrics.RecordRoundSubmitted(ctx, string(input.Mode))
		s.logger.InfoContext(ctx, "Round persisted",
			attr.ExtractCorrelationID(ctx),
			attr.RoundID(roundID),
			attr.UserID(input.UserID),
			attr.CourseID(input.CourseID),
			attr.Float64("score_differential", differential),
		)

		if err := s.publishRoundPersisted(ctx, &round); err != nil {
			// The round is durable; the aggregates degrade in freshness
			// until reconciled. Never fail the submission for this.
			s.logger.ErrorContext(ctx, "Failed to publish round persisted event",
				attr.ExtractCorrelationID(ctx),
				attr.RoundID(roundID),
				attr.Error(err),
			)
		}

		return results.SuccessResult[types.Round, SubmissionFailure](round), nil
	})
}

func (s *RoundService) publishRoundPersisted(ctx context.Context, round *types.Round) error {
	payload := roundevents.RoundPersistedPayloadV1{
		RoundID:    round.ID,
		UserID:     round.UserID,
		CourseID:   round.CourseID,
		DatePosted: round.DatePosted,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal round persisted payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	if correlationID := attr.ExtractCorrelationID(ctx).Value.String(); correlationID != "" {
		middleware.SetCorrelationID(correlationID, msg)
	}

	return s.eventBus.Publish(roundevents.RoundPersistedV1, msg)
}

// classify converts repository errors into submission failure payloads
// where they represent caller mistakes rather than infrastructure
// problems.
func classify(err error) (SubmissionFailure, bool) {
	if types.IsNotFound(err) {
		return SubmissionFailure{Code: FailureNotFound, Reason: err.Error()}, true
	}
	if types.IsInvalidInput(err) {
		return SubmissionFailure{Code: FailureInvalidInput, Reason: err.Error()}, true
	}
	return SubmissionFailure{}, false
}
