package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

type studentAssessmentService interface {
	ListByStudent(ctx context.Context, studentID int) ([]models.StudentAssessment, error)
	Find(ctx context.Context, studentID, assessmentID int) (*models.StudentAssessment, error)
	Create(ctx context.Context, req models.CreateStudentAssessmentRequest) (*models.StudentAssessment, error)
	Update(ctx context.Context, id int, patch models.StudentAssessmentPatch) (*models.StudentAssessment, error)
}

type progressService interface {
	ListByStudent(ctx context.Context, studentID int) ([]models.StudentProgress, error)
	FindBySubject(ctx context.Context, studentID int, subject string) (*models.StudentProgress, error)
	Create(ctx context.Context, req models.CreateStudentProgressRequest) (*models.StudentProgress, error)
	Update(ctx context.Context, id int, patch models.StudentProgressPatch) (*models.StudentProgress, error)
}

// StudentHandler serves student attempts and progress.
type StudentHandler struct {
	assessments studentAssessmentService
	progress    progressService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(assessments studentAssessmentService, progress progressService) *StudentHandler {
	return &StudentHandler{assessments: assessments, progress: progress}
}

// ListAssessments godoc
// @Summary List student assessments
// @Description All attempts of a student, or the first attempt at one assessment
// @Tags Students
// @Produce json
// @Param studentId path int true "Student ID"
// @Param assessmentId query int false "Assessment ID"
// @Success 200 {array} models.StudentAssessment
// @Failure 404 {object} response.ErrorBody
// @Router /student-assessments/{studentId} [get]
func (h *StudentHandler) ListAssessments(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	assessmentID, ok := queryID(c, "assessmentId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if assessmentID != nil {
		sa, err := h.assessments.Find(ctx, studentID, *assessmentID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, sa)
		return
	}

	items, err := h.assessments.ListByStudent(ctx, studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// CreateAssessment godoc
// @Summary Start student assessment
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.CreateStudentAssessmentRequest true "Attempt"
// @Success 201 {object} models.StudentAssessment
// @Failure 400 {object} response.ErrorBody
// @Router /student-assessments [post]
func (h *StudentHandler) CreateAssessment(c *gin.Context) {
	var req models.CreateStudentAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}
	sa, err := h.assessments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sa)
}

// UpdateAssessment godoc
// @Summary Update student assessment
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student assessment ID"
// @Param payload body models.StudentAssessmentPatch true "Fields to change"
// @Success 200 {object} models.StudentAssessment
// @Failure 404 {object} response.ErrorBody
// @Router /student-assessments/{id} [put]
func (h *StudentHandler) UpdateAssessment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch models.StudentAssessmentPatch
	if !bindJSON(c, &patch) {
		return
	}
	sa, err := h.assessments.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sa)
}

// ListProgress godoc
// @Summary List student progress
// @Description All progress records of a student, or the record for one subject
// @Tags Students
// @Produce json
// @Param studentId path int true "Student ID"
// @Param subject query string false "Subject"
// @Success 200 {array} models.StudentProgress
// @Failure 404 {object} response.ErrorBody
// @Router /student-progress/{studentId} [get]
func (h *StudentHandler) ListProgress(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if subject := c.Query("subject"); subject != "" {
		sp, err := h.progress.FindBySubject(ctx, studentID, subject)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, sp)
		return
	}

	items, err := h.progress.ListByStudent(ctx, studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// CreateProgress godoc
// @Summary Create student progress
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.CreateStudentProgressRequest true "Progress"
// @Success 201 {object} models.StudentProgress
// @Failure 400 {object} response.ErrorBody
// @Router /student-progress [post]
func (h *StudentHandler) CreateProgress(c *gin.Context) {
	var req models.CreateStudentProgressRequest
	if !bindJSON(c, &req) {
		return
	}
	sp, err := h.progress.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sp)
}

// UpdateProgress godoc
// @Summary Update student progress
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Progress ID"
// @Param payload body models.StudentProgressPatch true "Fields to change"
// @Success 200 {object} models.StudentProgress
// @Failure 404 {object} response.ErrorBody
// @Router /student-progress/{id} [put]
func (h *StudentHandler) UpdateProgress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch models.StudentProgressPatch
	if !bindJSON(c, &patch) {
		return
	}
	sp, err := h.progress.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sp)
}
