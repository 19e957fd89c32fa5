package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

type assessmentService interface {
	List(ctx context.Context, createdBy *int) ([]models.Assessment, error)
	Get(ctx context.Context, id int) (*models.Assessment, error)
	Create(ctx context.Context, req models.CreateAssessmentRequest) (*models.Assessment, error)
	Update(ctx context.Context, id int, patch models.AssessmentPatch) (*models.Assessment, error)
}

// AssessmentHandler serves the assessment builder.
type AssessmentHandler struct {
	service assessmentService
}

// NewAssessmentHandler constructs an AssessmentHandler.
func NewAssessmentHandler(svc assessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: svc}
}

// List godoc
// @Summary List assessments
// @Tags Assessments
// @Produce json
// @Param createdBy query int false "Creator user ID"
// @Success 200 {array} models.Assessment
// @Router /assessments [get]
func (h *AssessmentHandler) List(c *gin.Context) {
	createdBy, ok := queryID(c, "createdBy")
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), createdBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get assessment
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} models.Assessment
// @Failure 404 {object} response.ErrorBody
// @Router /assessments/{id} [get]
func (h *AssessmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, a)
}

// Create godoc
// @Summary Create assessment
// @Description Questions are generated when the payload carries none
// @Tags Assessments
// @Accept json
// @Produce json
// @Param payload body models.CreateAssessmentRequest true "Assessment"
// @Success 201 {object} models.Assessment
// @Failure 400 {object} response.ErrorBody
// @Router /assessments [post]
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req models.CreateAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, a)
}

// Update godoc
// @Summary Update assessment
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param payload body models.AssessmentPatch true "Fields to change"
// @Success 200 {object} models.Assessment
// @Failure 404 {object} response.ErrorBody
// @Router /assessments/{id} [put]
func (h *AssessmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch models.AssessmentPatch
	if !bindJSON(c, &patch) {
		return
	}
	a, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, a)
}
