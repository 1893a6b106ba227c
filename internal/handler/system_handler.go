package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// SystemHandler serves liveness and health probes.
type SystemHandler struct {
	mongo Pinger
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewSystemHandler creates a SystemHandler. rdb may be nil.
func NewSystemHandler(mongo Pinger, rdb *redis.Client, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		mongo: mongo,
		rdb:   rdb,
		log:   log.With().Str("component", "system_handler").Logger(),
	}
}

// Root godoc
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Online Group Study server is running")
}

// Health godoc
// GET /health
// Pings the document store, and redis when configured.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"mongo": "ok"}

	if err := h.mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.log.Warn().Err(err).Msg("Mongo health check failed")
		checks["mongo"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if h.rdb != nil {
		checks["redis"] = "ok"
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.log.Warn().Err(err).Msg("Redis health check failed")
			checks["redis"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	checks["status"] = "ok"
	if status != http.StatusOK {
		checks["status"] = "degraded"
	}
	c.JSON(status, checks)
}
