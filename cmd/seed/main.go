// Command seed fills an empty database with the feature cards shown on the
// landing page and a handful of demo assignments.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/groupstudy/groupstudy-backend/internal/config"
	"github.com/groupstudy/groupstudy-backend/internal/database"
	"github.com/groupstudy/groupstudy-backend/internal/logger"
	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/groupstudy/groupstudy-backend/internal/repository"
	"github.com/groupstudy/groupstudy-backend/internal/service"
)

var features = []model.Feature{
	{"title": "Create Assignments", "description": "Post tasks for the whole group with marks, difficulty and a due date."},
	{"title": "Submit Your Work", "description": "Hand in a link to your solution and track it under My Assignments."},
	{"title": "Peer Grading", "description": "Mark pending submissions and leave feedback for your friends."},
	{"title": "Leaderboard", "description": "See the best completed submissions ranked by obtained mark."},
}

func demoAssignments() []model.CreateAssignmentRequest {
	due := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	marks := func(v float64) *float64 { return &v }

	return []model.CreateAssignmentRequest{
		{Title: "Linked List Basics", Difficulty: string(model.DifficultyEasy), Marks: marks(20), DueDate: due, Description: "Implement insert, delete and reverse."},
		{Title: "Binary Search Variants", Difficulty: string(model.DifficultyMedium), Marks: marks(40), DueDate: due, Description: "Lower bound, upper bound and rotated arrays."},
		{Title: "Shortest Paths", Difficulty: string(model.DifficultyHard), Marks: marks(60), DueDate: due, Description: "Dijkstra with a heap, then Bellman-Ford."},
	}
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := database.NewMongoClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDatabase)
	if err := database.EnsureIndexes(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	featureRepo := repository.NewFeatureRepository(db.Collection(database.FeatureCollection))
	assignmentService := service.NewAssignmentService(
		repository.NewAssignmentRepository(db.Collection(database.AssignmentsCollection)),
	)

	existing, err := featureRepo.ListAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read features")
	}
	if len(existing) == 0 {
		fmt.Println("=== Seeding features ===")
		for _, f := range features {
			if _, err := featureRepo.Create(ctx, f); err != nil {
				log.Fatal().Err(err).Msg("Failed to insert feature")
			}
		}
	} else {
		fmt.Printf("Found %d features, skipping.\n", len(existing))
	}

	count, err := assignmentService.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count assignments")
	}
	if count > 0 {
		fmt.Printf("Found %d assignments, skipping.\n", count)
		return
	}

	fmt.Println("=== Seeding demo assignments ===")
	created := 0
	for _, req := range demoAssignments() {
		if _, err := assignmentService.Create(ctx, req); err != nil {
			fmt.Printf("Error creating %q: %v\n", req.Title, err)
			continue
		}
		created++
	}
	fmt.Printf("\nSeed completed! Added %d/%d assignments.\n", created, len(demoAssignments()))
}
