package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexPlan lists the secondary indexes backing the listing filters.
var indexPlan = map[string][]mongo.IndexModel{
	AssignmentsCollection: {
		{
			Keys:    bson.D{{Key: "difficulty", Value: 1}},
			Options: options.Index().SetName("difficulty_1"),
		},
	},
	SubmissionsCollection: {
		{
			Keys:    bson.D{{Key: "submittedBy", Value: 1}},
			Options: options.Index().SetName("submittedBy_1"),
		},
		{
			Keys:    bson.D{{Key: "pendingStatus", Value: 1}, {Key: "obtainedMark", Value: -1}},
			Options: options.Index().SetName("pendingStatus_1_obtainedMark_-1"),
		},
	},
}

// EnsureIndexes creates the listing indexes. Index creation is idempotent on
// the server, so this runs on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	for coll, models := range indexPlan {
		names, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
		log.Debug().Str("collection", coll).Strs("indexes", names).Msg("Indexes ensured")
	}
	return nil
}
