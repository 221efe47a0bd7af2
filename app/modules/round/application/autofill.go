package roundservice

import (
	"context"
	"math/rand"

	"github.com/fore-golf/fore-api/internal/types"
)

// AutofillHole is one hole of a partially complete scorecard. A nil
// Score marks the hole as fillable; holes with a caller-supplied score
// are fixed and never altered.
type AutofillHole struct {
	Score *int `json:"score"`
	Par   *int `json:"par"`
}

// AutofillInput asks for the empty holes of a scorecard to be filled so
// the card sums to TargetTotal.
type AutofillInput struct {
	Scorecard   map[string]AutofillHole `json:"scorecard"`
	TargetTotal int                     `json:"target_total"`
}

// AutofillScores fills every empty hole (starting from par, default 4)
// and then nudges the filled holes up or down one stroke at a time, in
// random order, until the card sums to the target total. Fixed holes are
// untouched; filled scores never drop below 1.
func (s *RoundService) AutofillScores(_ context.Context, input AutofillInput) (map[string]int, error) {
	scores := make(map[string]int, len(input.Scorecard))
	var unfixed []string

	for key, hole := range input.Scorecard {
		if hole.Score != nil {
			scores[key] = *hole.Score
			continue
		}
		par := 4
		if hole.Par != nil {
			par = *hole.Par
		}
		scores[key] = par
		unfixed = append(unfixed, key)
	}

	// Shuffling spreads the adjustment across holes so the filled card
	// looks like a played round rather than a staircase.
	rand.Shuffle(len(unfixed), func(i, j int) {
		unfixed[i], unfixed[j] = unfixed[j], unfixed[i]
	})

	for total(scores) != input.TargetTotal {
		progressed := false
		for _, key := range unfixed {
			current := total(scores)
			switch {
			case current < input.TargetTotal:
				scores[key]++
				progressed = true
			case current > input.TargetTotal && scores[key] > 1:
				scores[key]--
				progressed = true
			}
			if total(scores) == input.TargetTotal {
				break
			}
		}
		if !progressed {
			return nil, &types.InvalidInputError{
				Reason: "target total is not reachable with the provided fixed scores",
			}
		}
	}

	return scores, nil
}

func total(scores map[string]int) int {
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return sum
}
