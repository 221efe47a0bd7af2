package roundservice

import "github.com/fore-golf/fore-api/internal/types"

// Standard difficulty constants used when a course carries no tee box
// data at all.
const (
	defaultSlopeRating  = 113
	defaultCourseRating = 72
	defaultCoursePar    = 72
)

// resolveSlopeAndRating picks the difficulty constants for a submission:
// the selected tee box's values, else the mean across all tee boxes, else
// the standard defaults.
func resolveSlopeAndRating(teeBoxIndex *int, course *types.Course) (slopeRating, courseRating float64) {
	if teeBoxIndex != nil {
		teeBox := course.TeeBoxes[*teeBoxIndex]
		return teeBox.SlopeRating, teeBox.CourseRating
	}

	if len(course.TeeBoxes) > 0 {
		for _, teeBox := range course.TeeBoxes {
			slopeRating += teeBox.SlopeRating
			courseRating += teeBox.CourseRating
		}
		n := float64(len(course.TeeBoxes))
		return slopeRating / n, courseRating / n
	}

	return defaultSlopeRating, defaultCourseRating
}

// coursePar sums the course's hole pars, defaulting when the course lacks
// detailed hole data.
func coursePar(course *types.Course) int {
	if len(course.Scorecard) == 0 {
		return defaultCoursePar
	}
	par := 0
	for _, hole := range course.Scorecard {
		par += hole.Par
	}
	return par
}

// calculateCourseHandicap converts a player's handicap index into the
// strokes they receive on this course.
func calculateCourseHandicap(playerHandicap, slopeRating, courseRating float64, coursePar int) float64 {
	return playerHandicap*(slopeRating/defaultSlopeRating) + courseRating - float64(coursePar)
}

// adjustedGrossScore applies the per-hole maximum score rules and sums.
//
// With an established handicap the maximum hole score is a net double
// bogey: par + 2, plus one handicap stroke when the hole's stroke index
// is within the course handicap. Without one, holes are capped at par+5
// (initial score posting rule). Holes without par data are not capped.
// Front/back and total submissions are aggregate values and are never
// capped.
func adjustedGrossScore(scorecard types.Scorecard, playerHandicap *float64, slopeRating, courseRating float64, coursePar int) int {
	switch scorecard.Mode {
	case types.ModeAllHoles:
		var courseHandicap float64
		if playerHandicap != nil {
			courseHandicap = calculateCourseHandicap(*playerHandicap, slopeRating, courseRating, coursePar)
		}

		adjusted := 0
		for _, hole := range scorecard.Holes {
			if hole.Score == nil {
				continue
			}
			score := *hole.Score

			if hole.Par == nil {
				adjusted += score
				continue
			}

			if playerHandicap != nil {
				maxHoleScore := *hole.Par + 2
				if hole.StrokeIndex != nil && float64(*hole.StrokeIndex) <= courseHandicap {
					maxHoleScore++
				}
				adjusted += min(score, maxHoleScore)
			} else {
				adjusted += min(score, *hole.Par+5)
			}
		}
		return adjusted

	case types.ModeFrontAndBack:
		return scorecard.Front.Score + scorecard.Back.Score

	default: // types.ModeTotalScore
		return scorecard.Total.Score
	}
}

// CalculateScoreDifferential computes the course-difficulty-normalized
// measure of a single round. pccAdjustment is the playing-conditions
// correction; it is accepted as an input and defaults to 0.
func CalculateScoreDifferential(scorecard types.Scorecard, teeBoxIndex *int, course *types.Course, playerHandicap *float64, pccAdjustment float64) float64 {
	slopeRating, courseRating := resolveSlopeAndRating(teeBoxIndex, course)

	adjusted := adjustedGrossScore(scorecard, playerHandicap, slopeRating, courseRating, coursePar(course))

	return (defaultSlopeRating / slopeRating) * (float64(adjusted) - courseRating - pccAdjustment)
}
