package parsers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fore-golf/fore-api/internal/types"
)

// parseRows interprets tabular scorecard data shared by the CSV and
// XLSX parsers. The first row is a header naming each column (hole
// numbers, "front"/"back", or "total"); the first data row below it
// holds the scores. Columns like "player" or "name" are ignored.
func parseRows(rows [][]string) (*ParsedScorecard, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("scorecard must contain at least a header and one data row")
	}

	header := rows[0]
	scoreRow := rows[1]

	holes := map[string]int{}
	segments := map[string]int{}

	for i, col := range header {
		if i >= len(scoreRow) {
			break
		}
		key := strings.ToLower(strings.TrimSpace(col))
		value := strings.TrimSpace(scoreRow[i])
		if key == "" || value == "" {
			continue
		}

		score, err := strconv.Atoi(value)
		if err != nil {
			continue
		}

		if holeNumber, err := strconv.Atoi(strings.TrimPrefix(key, "hole ")); err == nil && holeNumber >= 1 {
			holes[strconv.Itoa(holeNumber)] = score
			continue
		}
		switch key {
		case "front", "out":
			segments["front"] = score
		case "back", "in":
			segments["back"] = score
		case "total":
			segments["total"] = score
		}
	}

	switch {
	case len(holes) > 0:
		return &ParsedScorecard{Mode: types.ModeAllHoles, Scorecard: holes}, nil
	case segments["front"] != 0 && segments["back"] != 0:
		return &ParsedScorecard{
			Mode:      types.ModeFrontAndBack,
			Scorecard: map[string]int{"front": segments["front"], "back": segments["back"]},
		}, nil
	case segments["total"] != 0:
		return &ParsedScorecard{
			Mode:      types.ModeTotalScore,
			Scorecard: map[string]int{"total": segments["total"]},
		}, nil
	default:
		return nil, fmt.Errorf("no hole, front/back, or total score columns found")
	}
}
