package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/groupstudy/groupstudy-backend/internal/config"
	"github.com/groupstudy/groupstudy-backend/internal/database"
	"github.com/groupstudy/groupstudy-backend/internal/handler"
	"github.com/groupstudy/groupstudy-backend/internal/logger"
	"github.com/groupstudy/groupstudy-backend/internal/repository"
	"github.com/groupstudy/groupstudy-backend/internal/router"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/groupstudy/groupstudy-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("env", cfg.AppEnv).
		Bool("open_mutation_routes", cfg.OpenMutationRoutes).
		Msg("Starting Group Study API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	client, err := database.NewMongoClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	db := client.Database(cfg.MongoDatabase)

	if err := database.EnsureIndexes(ctx, db, log); err != nil {
		log.Warn().Err(err).Msg("Index bootstrap failed")
	}

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	assignmentRepo := repository.NewAssignmentRepository(db.Collection(database.AssignmentsCollection))
	submissionRepo := repository.NewSubmissionRepository(db.Collection(database.SubmissionsCollection))
	featureRepo := repository.NewFeatureRepository(db.Collection(database.FeatureCollection))

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	assignmentService := service.NewAssignmentService(assignmentRepo)
	submissionService := service.NewSubmissionService(submissionRepo)
	featureService := service.NewFeatureService(featureRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg, log),
		Assignment: handler.NewAssignmentHandler(assignmentService, log),
		Submission: handler.NewSubmissionHandler(submissionService, log),
		Feature:    handler.NewFeatureHandler(featureService, log),
		System:     handler.NewSystemHandler(client, rdb, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Release store connections.
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("MongoDB disconnect error")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("Redis close error")
		}
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
