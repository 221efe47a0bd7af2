package coursedb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fore-golf/fore-api/internal/types"
)

// courseDocument is the stored shape of a course. Ingestion writes more
// fields than these; the driver ignores the ones we don't model.
type courseDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	City      string               `bson:"city"`
	State     string               `bson:"state"`
	Country   string               `bson:"country"`
	NumHoles  int                  `bson:"num_holes"`
	Scorecard []types.CourseHole   `bson:"scorecard"`
	TeeBoxes  []types.TeeBox       `bson:"tee_boxes"`
	Rounds    []primitive.ObjectID `bson:"rounds"`
}

func (d *courseDocument) toDomain() *types.Course {
	rounds := make([]types.RoundID, 0, len(d.Rounds))
	for _, oid := range d.Rounds {
		rounds = append(rounds, types.RoundID(oid.Hex()))
	}
	return &types.Course{
		ID:        types.CourseID(d.ID.Hex()),
		Name:      d.Name,
		City:      d.City,
		State:     d.State,
		Country:   d.Country,
		NumHoles:  d.NumHoles,
		Scorecard: d.Scorecard,
		TeeBoxes:  d.TeeBoxes,
		Rounds:    rounds,
	}
}
