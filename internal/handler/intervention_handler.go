package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

type interventionService interface {
	List(ctx context.Context, filter models.InterventionFilter) ([]models.Intervention, error)
	Create(ctx context.Context, req models.CreateInterventionRequest) (*models.Intervention, error)
	Update(ctx context.Context, id int, patch models.InterventionPatch) (*models.Intervention, error)
}

// InterventionHandler serves educator interventions.
type InterventionHandler struct {
	service interventionService
}

// NewInterventionHandler constructs an InterventionHandler.
func NewInterventionHandler(svc interventionService) *InterventionHandler {
	return &InterventionHandler{service: svc}
}

// List godoc
// @Summary List interventions
// @Tags Interventions
// @Produce json
// @Param studentId query int false "Student ID"
// @Param educatorId query int false "Educator ID"
// @Success 200 {array} models.Intervention
// @Router /interventions [get]
func (h *InterventionHandler) List(c *gin.Context) {
	var filter models.InterventionFilter
	var ok bool
	if filter.StudentID, ok = queryID(c, "studentId"); !ok {
		return
	}
	if filter.EducatorID, ok = queryID(c, "educatorId"); !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Create godoc
// @Summary Create intervention
// @Tags Interventions
// @Accept json
// @Produce json
// @Param payload body models.CreateInterventionRequest true "Intervention"
// @Success 201 {object} models.Intervention
// @Failure 400 {object} response.ErrorBody
// @Router /interventions [post]
func (h *InterventionHandler) Create(c *gin.Context) {
	var req models.CreateInterventionRequest
	if !bindJSON(c, &req) {
		return
	}
	i, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, i)
}

// Update godoc
// @Summary Update intervention
// @Tags Interventions
// @Accept json
// @Produce json
// @Param id path int true "Intervention ID"
// @Param payload body models.InterventionPatch true "Fields to change"
// @Success 200 {object} models.Intervention
// @Failure 404 {object} response.ErrorBody
// @Router /interventions/{id} [put]
func (h *InterventionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch models.InterventionPatch
	if !bindJSON(c, &patch) {
		return
	}
	i, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, i)
}
