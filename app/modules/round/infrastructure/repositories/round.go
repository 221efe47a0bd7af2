package rounddb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fore-golf/fore-api/internal/types"
)

// RoundDBImpl is the MongoDB-backed round repository.
type RoundDBImpl struct {
	Collection *mongo.Collection
}

var _ Repository = (*RoundDBImpl)(nil)

func (db *RoundDBImpl) InsertRound(ctx context.Context, round *types.Round) (types.RoundID, error) {
	userOID, err := primitive.ObjectIDFromHex(string(round.UserID))
	if err != nil {
		return "", &types.InvalidInputError{Reason: fmt.Sprintf("invalid user id %q", round.UserID)}
	}
	courseOID, err := primitive.ObjectIDFromHex(string(round.CourseID))
	if err != nil {
		return "", &types.InvalidInputError{Reason: fmt.Sprintf("invalid course id %q", round.CourseID)}
	}

	res, err := db.Collection.InsertOne(ctx, toDocument(round, userOID, courseOID))
	if err != nil {
		return "", fmt.Errorf("failed to insert round: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return types.RoundID(oid.Hex()), nil
}

func (db *RoundDBImpl) FindRounds(ctx context.Context, ids []types.RoundID) ([]types.Round, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(string(id))
		if err != nil {
			return nil, &types.InvalidInputError{Reason: fmt.Sprintf("invalid round id %q", id)}
		}
		oids = append(oids, oid)
	}

	cursor, err := db.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find rounds: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[types.RoundID]types.Round, len(ids))
	for cursor.Next(ctx) {
		var doc roundDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode round: %w", err)
		}
		round := doc.toDomain()
		byID[round.ID] = round
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %w", err)
	}

	// Preserve the caller's id order; unknown ids are skipped.
	rounds := make([]types.Round, 0, len(byID))
	for _, id := range ids {
		if round, ok := byID[id]; ok {
			rounds = append(rounds, round)
		}
	}
	return rounds, nil
}
