package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path identifier is not a valid ObjectID.
var ErrInvalidID = errors.New("invalid identifier")

// ParseID converts a hex identifier into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func idFilter(id string) (bson.M, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid}, nil
}
