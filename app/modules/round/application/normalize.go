package roundservice

import (
	"strconv"

	"github.com/fore-golf/fore-api/internal/types"
)

// NormalizeScorecard attaches per-hole course metadata (par, yards,
// stroke index) to a validated raw scorecard and shapes it into the
// tagged scorecard variant for the selected mode.
//
// When the course has no detailed hole data, par/yards/stroke index stay
// nil throughout and downstream capping is skipped. Yards additionally
// require a tee selection.
func NormalizeScorecard(mode types.ScorecardMode, raw map[string]int, teeBoxIndex *int, course *types.Course) types.Scorecard {
	teeName := types.TeeBoxName(teeBoxIndex)
	hasHoles := len(course.Scorecard) > 0

	switch mode {
	case types.ModeAllHoles:
		holes := make([]types.HoleResult, 0, course.NumHoles)
		for holeNumber := 1; holeNumber <= course.NumHoles; holeNumber++ {
			result := types.HoleResult{}
			if score, ok := raw[strconv.Itoa(holeNumber)]; ok {
				result.Score = intPtr(score)
			}
			if hasHoles {
				hole := course.Scorecard[holeNumber-1]
				result.Par = intPtr(hole.Par)
				result.StrokeIndex = intPtr(hole.StrokeIndex)
				if tee, ok := hole.Tees[teeName]; ok {
					result.Yards = intPtr(tee.Yards)
				}
			}
			holes = append(holes, result)
		}
		return types.Scorecard{Mode: mode, Holes: holes}

	case types.ModeFrontAndBack:
		front := segment(raw["front"], course, teeName, 1, 9)
		back := segment(raw["back"], course, teeName, 10, 18)
		return types.Scorecard{Mode: mode, Front: &front, Back: &back}

	default: // types.ModeTotalScore
		total := segment(raw["total"], course, teeName, 1, course.NumHoles)
		return types.Scorecard{Mode: mode, Total: &total}
	}
}

// segment sums par and yards over an inclusive hole-number range.
func segment(score int, course *types.Course, teeName string, firstHole, lastHole int) types.SegmentResult {
	result := types.SegmentResult{Score: score}
	if len(course.Scorecard) == 0 {
		return result
	}

	par := 0
	yards := 0
	yardsKnown := teeName != ""
	for holeNumber := firstHole; holeNumber <= lastHole && holeNumber <= len(course.Scorecard); holeNumber++ {
		hole := course.Scorecard[holeNumber-1]
		par += hole.Par
		if tee, ok := hole.Tees[teeName]; yardsKnown && ok {
			yards += tee.Yards
		} else {
			yardsKnown = false
		}
	}

	result.Par = intPtr(par)
	if yardsKnown {
		result.Yards = intPtr(yards)
	}
	return result
}

func intPtr(v int) *int { return &v }
