package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/groupstudy/groupstudy-backend/internal/response"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/groupstudy/groupstudy-backend/internal/validator"
	"github.com/rs/zerolog"
)

type AssignmentHandler struct {
	assignmentService service.AssignmentService
	log               zerolog.Logger
}

func NewAssignmentHandler(assignmentService service.AssignmentService, log zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		log:               log.With().Str("component", "assignment_handler").Logger(),
	}
}

// Create godoc
// POST /createAssignment
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.assignmentService.Create(c.Request.Context(), req)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Count godoc
// GET /assignmentsCount
func (h *AssignmentHandler) Count(c *gin.Context) {
	n, err := h.assignmentService.Count(c.Request.Context())
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}

// ListByDifficulty godoc
// GET /assignmentsCnt/:difficulty
func (h *AssignmentHandler) ListByDifficulty(c *gin.Context) {
	list, err := h.assignmentService.ListByDifficulty(c.Request.Context(), c.Param("difficulty"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// ListPage godoc
// GET /assignments/:difficulty?page=&size=
func (h *AssignmentHandler) ListPage(c *gin.Context) {
	var q model.PageQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	list, err := h.assignmentService.ListPage(c.Request.Context(), c.Param("difficulty"), q)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Get godoc
// GET /updateAssignment/:id
// GET /assignmentDetails/:id
// Responds with a zero- or one-element array.
func (h *AssignmentHandler) Get(c *gin.Context) {
	list, err := h.assignmentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Update godoc
// PUT /updateAssignment/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req model.UpdateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.assignmentService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Delete godoc
// DELETE /deleteAssignment/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	res, err := h.assignmentService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// ListImages godoc
// GET /assignmentsImages
func (h *AssignmentHandler) ListImages(c *gin.Context) {
	list, err := h.assignmentService.ListBanner(c.Request.Context())
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}
