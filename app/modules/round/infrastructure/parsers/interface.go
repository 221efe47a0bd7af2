// Package parsers turns uploaded scorecard files into submission-ready
// scorecard maps. Supported layouts are a header row of hole numbers
// (optionally front/back/total columns) followed by one score row.
package parsers

import (
	"github.com/fore-golf/fore-api/internal/types"
)

// ParsedScorecard is the result of parsing an uploaded scorecard file:
// the detected entry mode and the string-keyed score map that a round
// submission accepts.
type ParsedScorecard struct {
	Mode      types.ScorecardMode
	Scorecard map[string]int
}

// Parser defines the interface for scorecard parsers.
type Parser interface {
	// Parse reads scorecard data and returns a ParsedScorecard.
	// fileData should contain the raw file bytes.
	// fileName is optional and used for validation.
	Parse(fileData []byte, fileName string) (*ParsedScorecard, error)
}
