package database

import (
	"context"
	"fmt"
	"time"

	"github.com/groupstudy/groupstudy-backend/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared by the repositories.
const (
	AssignmentsCollection = "assignments"
	SubmissionsCollection = "submittedAssignments"
	FeatureCollection     = "feature"
)

const connectTimeout = 10 * time.Second

// NewMongoClient connects to MongoDB with the stable v1 server API and
// verifies the deployment with a ping before returning.
func NewMongoClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info().
		Str("uri", config.Redacted(cfg.MongoURI)).
		Str("database", cfg.MongoDatabase).
		Msg("MongoDB connected")

	return client, nil
}
