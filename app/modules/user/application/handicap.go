package userservice

import "sort"

// handicapAdjustments applies the USGA adjustment for small sample sizes.
// Counts outside the table contribute 0.
var handicapAdjustments = map[int]float64{
	3: -2,
	4: -1,
	5: 0,
	6: -1,
}

// numRoundsToLowestK maps the number of available differentials to how
// many of the lowest ones are averaged.
var numRoundsToLowestK = map[int]int{
	6:  2,
	7:  2,
	8:  2,
	9:  3,
	10: 3,
	11: 3,
	12: 4,
	13: 4,
	14: 4,
	15: 5,
	16: 5,
	17: 6,
	18: 6,
	19: 7,
}

// CalculateHandicapIndex computes the rolling handicap index from the
// score differentials of a user's recent rounds. Only the numeric values
// matter; the caller bounds the input to its configured window.
//
// With fewer than 3 differentials the index is undefined and ok is false.
// 3-5 rounds use the single lowest differential, 6-19 average the lowest
// k from a lookup table, and 20+ average the lowest 8; counts of 3, 4 and
// 6 receive a negative adjustment.
func CalculateHandicapIndex(differentials []float64) (index float64, ok bool) {
	n := len(differentials)
	if n < 3 {
		return 0, false
	}

	sorted := make([]float64, n)
	copy(sorted, differentials)
	sort.Float64s(sorted)

	switch {
	case n <= 5:
		return sorted[0] + handicapAdjustments[n], true
	case n <= 19:
		k := numRoundsToLowestK[n]
		return mean(sorted[:k]) + handicapAdjustments[n], true
	default:
		return mean(sorted[:8]), true
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
