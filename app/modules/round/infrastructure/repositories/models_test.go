package rounddb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fore-golf/fore-api/internal/types"
)

func intPtr(v int) *int { return &v }

func TestRoundDocumentAllHoles(t *testing.T) {
	userOID := primitive.NewObjectID()
	courseOID := primitive.NewObjectID()

	round := &types.Round{
		UserID:        types.UserID(userOID.Hex()),
		CourseID:      types.CourseID(courseOID.Hex()),
		TeeBoxIndex:   intPtr(0),
		Caption:       "windy day",
		ScorecardMode: types.ModeAllHoles,
		Scorecard: types.Scorecard{
			Mode: types.ModeAllHoles,
			Holes: []types.HoleResult{
				{Score: intPtr(4), Par: intPtr(4), Yards: intPtr(360), StrokeIndex: intPtr(1)},
				{Score: intPtr(5), Par: intPtr(3), Yards: intPtr(150), StrokeIndex: intPtr(2)},
			},
		},
		ScoreDifferential: 8.4,
		DatePosted:        time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	doc := toDocument(round, userOID, courseOID)
	require.Len(t, doc.Scorecard, 2)
	assert.Equal(t, intPtr(4), doc.Scorecard["1"].Score)
	assert.Equal(t, intPtr(2), doc.Scorecard["2"].StrokeIndex)

	doc.ID = primitive.NewObjectID()
	got := doc.toDomain()

	assert.Equal(t, types.RoundID(doc.ID.Hex()), got.ID)
	assert.Equal(t, round.UserID, got.UserID)
	assert.Equal(t, round.CourseID, got.CourseID)
	assert.Empty(t, cmp.Diff(round.Scorecard, got.Scorecard))
	assert.Equal(t, round.ScoreDifferential, got.ScoreDifferential)
	assert.True(t, got.DatePosted.Equal(round.DatePosted))
}

func TestRoundDocumentSegments(t *testing.T) {
	userOID := primitive.NewObjectID()
	courseOID := primitive.NewObjectID()

	round := &types.Round{
		UserID:        types.UserID(userOID.Hex()),
		CourseID:      types.CourseID(courseOID.Hex()),
		ScorecardMode: types.ModeFrontAndBack,
		Scorecard: types.Scorecard{
			Mode:  types.ModeFrontAndBack,
			Front: &types.SegmentResult{Score: 42, Par: intPtr(36)},
			Back:  &types.SegmentResult{Score: 45, Par: intPtr(36)},
		},
	}

	doc := toDocument(round, userOID, courseOID)
	require.Contains(t, doc.Scorecard, "front")
	require.Contains(t, doc.Scorecard, "back")
	assert.Nil(t, doc.Scorecard["front"].StrokeIndex)

	doc.ID = primitive.NewObjectID()
	got := doc.toDomain()
	assert.Empty(t, cmp.Diff(round.Scorecard, got.Scorecard))
	assert.Nil(t, got.Scorecard.Holes)
	assert.Nil(t, got.Scorecard.Total)
}

func TestRoundDocumentTotal(t *testing.T) {
	userOID := primitive.NewObjectID()
	courseOID := primitive.NewObjectID()

	round := &types.Round{
		UserID:        types.UserID(userOID.Hex()),
		CourseID:      types.CourseID(courseOID.Hex()),
		ScorecardMode: types.ModeTotalScore,
		Scorecard: types.Scorecard{
			Mode:  types.ModeTotalScore,
			Total: &types.SegmentResult{Score: 90},
		},
	}

	doc := toDocument(round, userOID, courseOID)
	doc.ID = primitive.NewObjectID()
	got := doc.toDomain()
	assert.Empty(t, cmp.Diff(round.Scorecard, got.Scorecard))
}
