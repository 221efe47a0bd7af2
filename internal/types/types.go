// Package types holds the domain types shared across modules.
package types

import (
	"fmt"
	"time"
)

// UserID is the hex document id of a user.
type UserID string

// CourseID is the hex document id of a course.
type CourseID string

// RoundID is the hex document id of a round.
type RoundID string

func (id UserID) String() string   { return string(id) }
func (id CourseID) String() string { return string(id) }
func (id RoundID) String() string  { return string(id) }

// ScorecardMode is the granularity at which a round's scores are recorded.
type ScorecardMode string

const (
	ModeAllHoles     ScorecardMode = "all-holes"
	ModeFrontAndBack ScorecardMode = "front-and-back"
	ModeTotalScore   ScorecardMode = "total-score"
)

// Valid reports whether m is one of the known scorecard modes.
func (m ScorecardMode) Valid() bool {
	switch m {
	case ModeAllHoles, ModeFrontAndBack, ModeTotalScore:
		return true
	}
	return false
}

// HoleTee is the per-hole data for a single tee box.
type HoleTee struct {
	Color string `json:"color" bson:"color"`
	Yards int    `json:"yards" bson:"yards"`
}

// CourseHole is one entry of a course's scorecard. StrokeIndex ranks the
// hole's difficulty, 1 being the hardest.
type CourseHole struct {
	HoleNumber  int                `json:"hole_number" bson:"hole_number"`
	Par         int                `json:"par" bson:"par"`
	StrokeIndex int                `json:"handicap" bson:"handicap"`
	Tees        map[string]HoleTee `json:"tees" bson:"tees"`
}

// TeeBox carries the per-tee difficulty constants for a course.
type TeeBox struct {
	Name         string  `json:"tee" bson:"tee"`
	SlopeRating  float64 `json:"slope" bson:"slope"`
	CourseRating float64 `json:"handicap" bson:"handicap"`
	TotalYards   int     `json:"total_yards" bson:"total_yards"`
}

// Course is the course aggregate. Scorecard, when populated, has exactly
// NumHoles entries ordered by hole number. Rounds is newest first.
type Course struct {
	ID        CourseID     `json:"id"`
	Name      string       `json:"name"`
	City      string       `json:"city,omitempty"`
	State     string       `json:"state,omitempty"`
	Country   string       `json:"country,omitempty"`
	NumHoles  int          `json:"num_holes"`
	Scorecard []CourseHole `json:"scorecard"`
	TeeBoxes  []TeeBox     `json:"tee_boxes"`
	Rounds    []RoundID    `json:"rounds"`
}

// TeeBoxName returns the stored key for a tee box index, or "" when no
// tee was selected. Keys follow the course ingestion format (teeBox1..n).
func TeeBoxName(teeBoxIndex *int) string {
	if teeBoxIndex == nil {
		return ""
	}
	return fmt.Sprintf("teeBox%d", *teeBoxIndex+1)
}

// HoleResult is one unit of a normalized all-holes scorecard. Par, Yards
// and StrokeIndex are nil when the course lacks detailed hole data (or no
// tee was selected, for Yards).
type HoleResult struct {
	Score       *int `json:"score" bson:"score"`
	Par         *int `json:"par" bson:"par"`
	Yards       *int `json:"yards" bson:"yards"`
	StrokeIndex *int `json:"stroke_index" bson:"stroke_index"`
}

// SegmentResult is one unit of a front-and-back or total-score scorecard.
type SegmentResult struct {
	Score int  `json:"score" bson:"score"`
	Par   *int `json:"par" bson:"par"`
	Yards *int `json:"yards" bson:"yards"`
}

// Scorecard is a tagged variant: exactly the fields for Mode are set.
// Holes is indexed by hole number - 1 for ModeAllHoles; Front and Back are
// set for ModeFrontAndBack; Total for ModeTotalScore.
type Scorecard struct {
	Mode  ScorecardMode  `json:"mode"`
	Holes []HoleResult   `json:"holes,omitempty"`
	Front *SegmentResult `json:"front,omitempty"`
	Back  *SegmentResult `json:"back,omitempty"`
	Total *SegmentResult `json:"total,omitempty"`
}

// Round is created once by submission and never mutated afterwards.
type Round struct {
	ID                RoundID       `json:"id"`
	UserID            UserID        `json:"user_id"`
	CourseID          CourseID      `json:"course_id"`
	TeeBoxIndex       *int          `json:"tee_box_index"`
	Caption           string        `json:"caption,omitempty"`
	ScorecardMode     ScorecardMode `json:"scorecard_mode"`
	Scorecard         Scorecard     `json:"scorecard"`
	ScoreDifferential float64       `json:"score_differential"`
	DatePosted        time.Time     `json:"date_posted"`

	// Course is populated only when a read explicitly resolves course data.
	Course *Course `json:"course,omitempty"`
}

// HandicapEntry is one append-only handicap_data record.
type HandicapEntry struct {
	Date     time.Time `json:"date" bson:"date"`
	Handicap float64   `json:"handicap" bson:"handicap"`
}

// User is the user aggregate as seen by this service. Rounds is newest
// first; HandicapData is chronological and append-only.
type User struct {
	ID           UserID          `json:"id"`
	Name         string          `json:"name"`
	Username     string          `json:"username"`
	Rounds       []RoundID       `json:"rounds"`
	HandicapData []HandicapEntry `json:"handicap_data"`
}

// CurrentHandicap returns the most recent handicap entry's value, or nil
// when the player has no established handicap yet.
func (u *User) CurrentHandicap() *float64 {
	if len(u.HandicapData) == 0 {
		return nil
	}
	h := u.HandicapData[len(u.HandicapData)-1].Handicap
	return &h
}
