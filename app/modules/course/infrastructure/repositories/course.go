package coursedb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fore-golf/fore-api/internal/types"
)

// CourseDBImpl is the MongoDB-backed course repository.
type CourseDBImpl struct {
	Collection *mongo.Collection
}

var _ Repository = (*CourseDBImpl)(nil)

func (db *CourseDBImpl) FindCourse(ctx context.Context, id types.CourseID) (*types.Course, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, &types.InvalidInputError{Reason: fmt.Sprintf("invalid course id %q", id)}
	}

	var doc courseDocument
	if err := db.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &types.NotFoundError{Entity: "course", ID: string(id)}
		}
		return nil, fmt.Errorf("failed to find course %s: %w", id, err)
	}

	return doc.toDomain(), nil
}

// PrependRound pushes the round id at position 0 of the rounds array in a
// single update, never read-modify-write. The $ne filter makes redelivery
// of the same event a no-op.
func (db *CourseDBImpl) PrependRound(ctx context.Context, courseID types.CourseID, roundID types.RoundID) error {
	courseOID, err := primitive.ObjectIDFromHex(string(courseID))
	if err != nil {
		return &types.InvalidInputError{Reason: fmt.Sprintf("invalid course id %q", courseID)}
	}
	roundOID, err := primitive.ObjectIDFromHex(string(roundID))
	if err != nil {
		return &types.InvalidInputError{Reason: fmt.Sprintf("invalid round id %q", roundID)}
	}

	res, err := db.Collection.UpdateOne(ctx,
		bson.M{"_id": courseOID, "rounds": bson.M{"$ne": roundOID}},
		bson.M{"$push": bson.M{"rounds": bson.M{"$each": bson.A{roundOID}, "$position": 0}}},
	)
	if err != nil {
		return fmt.Errorf("failed to prepend round %s to course %s: %w", roundID, courseID, err)
	}

	if res.MatchedCount == 0 {
		// Either the course is gone or the round id was already applied.
		count, err := db.Collection.CountDocuments(ctx, bson.M{"_id": courseOID})
		if err != nil {
			return fmt.Errorf("failed to verify course %s: %w", courseID, err)
		}
		if count == 0 {
			return &types.NotFoundError{Entity: "course", ID: string(courseID)}
		}
	}
	return nil
}
