package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groupstudy/groupstudy-backend/internal/middleware"
	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/groupstudy/groupstudy-backend/internal/response"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/groupstudy/groupstudy-backend/internal/validator"
	"github.com/rs/zerolog"
)

type SubmissionHandler struct {
	submissionService service.SubmissionService
	log               zerolog.Logger
}

func NewSubmissionHandler(submissionService service.SubmissionService, log zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		log:               log.With().Str("component", "submission_handler").Logger(),
	}
}

// Submit godoc
// POST /submitAssignment
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req model.SubmitAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var caller *model.Identity
	if claims := middleware.GetClaims(c); claims != nil {
		id := claims.Identity()
		caller = &id
	}

	res, err := h.submissionService.Submit(c.Request.Context(), req, caller)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// ListByStatus godoc
// GET /pendingAssignments/:pendingStatus
func (h *SubmissionHandler) ListByStatus(c *gin.Context) {
	list, err := h.submissionService.ListByStatus(c.Request.Context(), c.Param("pendingStatus"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// ListMine godoc
// GET /myAssignments?email=
// The router guarantees the email matches the caller.
func (h *SubmissionHandler) ListMine(c *gin.Context) {
	list, err := h.submissionService.ListByOwner(c.Request.Context(), c.Query("email"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Get godoc
// GET /markAssignment/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	list, err := h.submissionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Grade godoc
// PATCH /markAssignment/:id
func (h *SubmissionHandler) Grade(c *gin.Context) {
	var req model.GradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.submissionService.Grade(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Ranked godoc
// GET /completedAssignments/:rank
func (h *SubmissionHandler) Ranked(c *gin.Context) {
	list, err := h.submissionService.Ranked(c.Request.Context(), c.Param("rank"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}
