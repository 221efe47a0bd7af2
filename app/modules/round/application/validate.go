package roundservice

import (
	"fmt"
	"strconv"

	"github.com/fore-golf/fore-api/internal/types"
)

// ValidateScorecard enforces the completeness rules for a raw scorecard
// before any computation proceeds. The returned error is always an
// *types.InvalidInputError naming the missing element.
func ValidateScorecard(mode types.ScorecardMode, scorecard map[string]int, courseNumHoles int) error {
	switch mode {
	case types.ModeAllHoles:
		for holeNumber := 1; holeNumber <= courseNumHoles; holeNumber++ {
			if _, ok := scorecard[strconv.Itoa(holeNumber)]; !ok {
				return &types.InvalidInputError{
					Reason: fmt.Sprintf("hole %d not provided in scorecard", holeNumber),
				}
			}
		}
	case types.ModeFrontAndBack:
		if courseNumHoles != 18 {
			return &types.InvalidInputError{
				Reason: "cannot use front-and-back mode if course is not 18 holes",
			}
		}
		if _, ok := scorecard["front"]; !ok {
			return &types.InvalidInputError{Reason: "front 9 not provided in scorecard"}
		}
		if _, ok := scorecard["back"]; !ok {
			return &types.InvalidInputError{Reason: "back 9 not provided in scorecard"}
		}
	case types.ModeTotalScore:
		if _, ok := scorecard["total"]; !ok {
			return &types.InvalidInputError{Reason: "total not provided in scorecard"}
		}
	default:
		return &types.InvalidInputError{
			Reason: fmt.Sprintf("unrecognized scorecard mode %q", mode),
		}
	}
	return nil
}
