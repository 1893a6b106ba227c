package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groupstudy/groupstudy-backend/internal/response"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/rs/zerolog"
)

type FeatureHandler struct {
	featureService *service.FeatureService
	log            zerolog.Logger
}

func NewFeatureHandler(featureService *service.FeatureService, log zerolog.Logger) *FeatureHandler {
	return &FeatureHandler{
		featureService: featureService,
		log:            log.With().Str("component", "feature_handler").Logger(),
	}
}

// List godoc
// GET /feature
func (h *FeatureHandler) List(c *gin.Context) {
	features, err := h.featureService.ListAll(c.Request.Context())
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, features)
}
