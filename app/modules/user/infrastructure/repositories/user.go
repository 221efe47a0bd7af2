package userdb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fore-golf/fore-api/internal/types"
)

// UserDBImpl is the MongoDB-backed user repository.
type UserDBImpl struct {
	Collection *mongo.Collection
}

var _ Repository = (*UserDBImpl)(nil)

func (db *UserDBImpl) FindUser(ctx context.Context, id types.UserID) (*types.User, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, &types.InvalidInputError{Reason: fmt.Sprintf("invalid user id %q", id)}
	}

	var doc userDocument
	if err := db.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &types.NotFoundError{Entity: "user", ID: string(id)}
		}
		return nil, fmt.Errorf("failed to find user %s: %w", id, err)
	}

	return doc.toDomain(), nil
}

// PrependRound pushes the round id at position 0 of the rounds array in a
// single atomic update and returns the post-update document, so the
// caller's handicap recompute observes its own write. A concurrent
// submission can never drop this round id: there is no read-modify-write
// cycle anywhere in the path.
func (db *UserDBImpl) PrependRound(ctx context.Context, userID types.UserID, roundID types.RoundID) (*types.User, error) {
	userOID, err := primitive.ObjectIDFromHex(string(userID))
	if err != nil {
		return nil, &types.InvalidInputError{Reason: fmt.Sprintf("invalid user id %q", userID)}
	}
	roundOID, err := primitive.ObjectIDFromHex(string(roundID))
	if err != nil {
		return nil, &types.InvalidInputError{Reason: fmt.Sprintf("invalid round id %q", roundID)}
	}

	var doc userDocument
	err = db.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": userOID, "rounds": bson.M{"$ne": roundOID}},
		bson.M{"$push": bson.M{"rounds": bson.M{"$each": bson.A{roundOID}, "$position": 0}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		// No match: user gone, or the round id was already applied by an
		// earlier delivery of the same event.
		return db.FindUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to prepend round %s to user %s: %w", roundID, userID, err)
	}

	return doc.toDomain(), nil
}

// AppendHandicapData appends the entry unless one with the same date is
// already present, which makes event redelivery idempotent (the date is
// the round's date_posted and identifies the triggering round).
func (db *UserDBImpl) AppendHandicapData(ctx context.Context, userID types.UserID, entry types.HandicapEntry) error {
	userOID, err := primitive.ObjectIDFromHex(string(userID))
	if err != nil {
		return &types.InvalidInputError{Reason: fmt.Sprintf("invalid user id %q", userID)}
	}

	res, err := db.Collection.UpdateOne(ctx,
		bson.M{"_id": userOID, "handicap_data.date": bson.M{"$ne": entry.Date}},
		bson.M{"$push": bson.M{"handicap_data": entry}},
	)
	if err != nil {
		return fmt.Errorf("failed to append handicap data for user %s: %w", userID, err)
	}

	if res.MatchedCount == 0 {
		count, err := db.Collection.CountDocuments(ctx, bson.M{"_id": userOID})
		if err != nil {
			return fmt.Errorf("failed to verify user %s: %w", userID, err)
		}
		if count == 0 {
			return &types.NotFoundError{Entity: "user", ID: string(userID)}
		}
	}
	return nil
}
