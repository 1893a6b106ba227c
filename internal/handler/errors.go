package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groupstudy/groupstudy-backend/internal/repository"
	"github.com/groupstudy/groupstudy-backend/internal/response"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// failStore maps a service or store error to its HTTP response. Anything
// unrecognised is logged and reported as an internal error.
func failStore(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	case errors.Is(err, service.ErrOwnerMismatch):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	case errors.Is(err, service.ErrOwnerRequired):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"submittedBy": "submittedBy is required"})
		return
	}

	reqID := c.GetString(response.ContextKeyRequestID)
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Err(err).Str("request_id", reqID).Msg("Store unavailable")
		response.Fail(c, http.StatusServiceUnavailable, response.ErrStoreUnavailable)
		return
	}

	log.Error().Err(err).Str("request_id", reqID).Msg("Store operation failed")
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
