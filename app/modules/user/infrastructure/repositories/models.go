package userdb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fore-golf/fore-api/internal/types"
)

// userDocument is the stored shape of a user. Credential fields live in
// the same document but belong to the auth collaborator, so they are not
// modeled here.
type userDocument struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty"`
	Name         string                `bson:"name"`
	Username     string                `bson:"username"`
	Rounds       []primitive.ObjectID  `bson:"rounds"`
	HandicapData []types.HandicapEntry `bson:"handicap_data"`
}

func (d *userDocument) toDomain() *types.User {
	rounds := make([]types.RoundID, 0, len(d.Rounds))
	for _, oid := range d.Rounds {
		rounds = append(rounds, types.RoundID(oid.Hex()))
	}
	return &types.User{
		ID:           types.UserID(d.ID.Hex()),
		Name:         d.Name,
		Username:     d.Username,
		Rounds:       rounds,
		HandicapData: d.HandicapData,
	}
}
