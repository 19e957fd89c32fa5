package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// StudentAssessmentRepository stores student attempts.
type StudentAssessmentRepository interface {
	ListByStudent(ctx context.Context, studentID int) ([]models.StudentAssessment, error)
	FindByStudentAndAssessment(ctx context.Context, studentID, assessmentID int) (*models.StudentAssessment, error)
	Create(ctx context.Context, sa *models.StudentAssessment) error
	Update(ctx context.Context, id int, patch models.StudentAssessmentPatch) (*models.StudentAssessment, error)
}

// StudentAssessmentService manages student attempts.
type StudentAssessmentService struct {
	repo      StudentAssessmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentAssessmentService constructs the service.
func NewStudentAssessmentService(repo StudentAssessmentRepository, validate *validator.Validate, logger *zap.Logger) *StudentAssessmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentAssessmentService{repo: repo, validator: validate, logger: logger}
}

// ListByStudent returns every attempt of studentID.
func (s *StudentAssessmentService) ListByStudent(ctx context.Context, studentID int) ([]models.StudentAssessment, error) {
	items, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list student assessments")
	}
	return items, nil
}

// Find returns the first attempt of studentID at assessmentID.
func (s *StudentAssessmentService) Find(ctx context.Context, studentID, assessmentID int) (*models.StudentAssessment, error) {
	sa, err := s.repo.FindByStudentAndAssessment(ctx, studentID, assessmentID)
	if err != nil {
		return nil, lookupError(err, "Student assessment not found", "failed to get student assessment")
	}
	return sa, nil
}

// Create starts a new attempt.
func (s *StudentAssessmentService) Create(ctx context.Context, req models.CreateStudentAssessmentRequest) (*models.StudentAssessment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid student assessment payload")
	}
	sa := &models.StudentAssessment{
		StudentID:    req.StudentID,
		AssessmentID: req.AssessmentID,
		Score:        req.Score,
		MaxScore:     req.MaxScore,
		Answers:      req.Answers,
		CompletedAt:  req.CompletedAt,
	}
	if err := s.repo.Create(ctx, sa); err != nil {
		return nil, appErrors.Internal(err, "failed to create student assessment")
	}
	return sa, nil
}

// Update applies patch to the attempt with id.
func (s *StudentAssessmentService) Update(ctx context.Context, id int, patch models.StudentAssessmentPatch) (*models.StudentAssessment, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Validation(err, "invalid student assessment update")
	}
	sa, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, lookupError(err, "Student assessment not found", "failed to update student assessment")
	}
	return sa, nil
}
