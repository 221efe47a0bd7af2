package rounddb

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fore-golf/fore-api/internal/types"
)

// scorecardUnit is the stored per-unit shape: one hole, one nine, or the
// whole card, depending on the round's scorecard mode.
type scorecardUnit struct {
	Score       *int `bson:"score"`
	Par         *int `bson:"par"`
	Yards       *int `bson:"yards"`
	StrokeIndex *int `bson:"stroke_index,omitempty"`
}

// roundDocument is the stored shape of a round. The scorecard is a
// string-keyed map ("1".."18", "front"/"back", or "total") for
// compatibility with the course ingestion and feed consumers.
type roundDocument struct {
	ID                primitive.ObjectID       `bson:"_id,omitempty"`
	UserID            primitive.ObjectID       `bson:"user_id"`
	CourseID          primitive.ObjectID       `bson:"course_id"`
	TeeBoxIndex       *int                     `bson:"tee_box_index"`
	Caption           string                   `bson:"caption,omitempty"`
	ScorecardMode     string                   `bson:"scorecard_mode"`
	Scorecard         map[string]scorecardUnit `bson:"scorecard"`
	ScoreDifferential float64                  `bson:"score_differential"`
	DatePosted        time.Time                `bson:"date_posted"`
}

func toDocument(round *types.Round, userOID, courseOID primitive.ObjectID) *roundDocument {
	doc := &roundDocument{
		UserID:            userOID,
		CourseID:          courseOID,
		TeeBoxIndex:       round.TeeBoxIndex,
		Caption:           round.Caption,
		ScorecardMode:     string(round.ScorecardMode),
		Scorecard:         map[string]scorecardUnit{},
		ScoreDifferential: round.ScoreDifferential,
		DatePosted:        round.DatePosted,
	}

	switch round.Scorecard.Mode {
	case types.ModeAllHoles:
		for i, hole := range round.Scorecard.Holes {
			doc.Scorecard[strconv.Itoa(i+1)] = scorecardUnit{
				Score:       hole.Score,
				Par:         hole.Par,
				Yards:       hole.Yards,
				StrokeIndex: hole.StrokeIndex,
			}
		}
	case types.ModeFrontAndBack:
		doc.Scorecard["front"] = segmentUnit(round.Scorecard.Front)
		doc.Scorecard["back"] = segmentUnit(round.Scorecard.Back)
	case types.ModeTotalScore:
		doc.Scorecard["total"] = segmentUnit(round.Scorecard.Total)
	}

	return doc
}

func segmentUnit(segment *types.SegmentResult) scorecardUnit {
	score := segment.Score
	return scorecardUnit{Score: &score, Par: segment.Par, Yards: segment.Yards}
}

func (d *roundDocument) toDomain() types.Round {
	mode := types.ScorecardMode(d.ScorecardMode)
	scorecard := types.Scorecard{Mode: mode}

	switch mode {
	case types.ModeAllHoles:
		scorecard.Holes = make([]types.HoleResult, len(d.Scorecard))
		for key, unit := range d.Scorecard {
			holeNumber, err := strconv.Atoi(key)
			if err != nil || holeNumber < 1 || holeNumber > len(scorecard.Holes) {
				continue
			}
			scorecard.Holes[holeNumber-1] = types.HoleResult{
				Score:       unit.Score,
				Par:         unit.Par,
				Yards:       unit.Yards,
				StrokeIndex: unit.StrokeIndex,
			}
		}
	case types.ModeFrontAndBack:
		scorecard.Front = domainSegment(d.Scorecard["front"])
		scorecard.Back = domainSegment(d.Scorecard["back"])
	case types.ModeTotalScore:
		scorecard.Total = domainSegment(d.Scorecard["total"])
	}

	return types.Round{
		ID:                types.RoundID(d.ID.Hex()),
		UserID:            types.UserID(d.UserID.Hex()),
		CourseID:          types.CourseID(d.CourseID.Hex()),
		TeeBoxIndex:       d.TeeBoxIndex,
		Caption:           d.Caption,
		ScorecardMode:     mode,
		Scorecard:         scorecard,
		ScoreDifferential: d.ScoreDifferential,
		DatePosted:        d.DatePosted,
	}
}

func domainSegment(unit scorecardUnit) *types.SegmentResult {
	segment := &types.SegmentResult{Par: unit.Par, Yards: unit.Yards}
	if unit.Score != nil {
		segment.Score = *unit.Score
	}
	return segment
}
