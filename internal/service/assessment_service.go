package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/generator"
	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// AssessmentRepository stores assessments.
type AssessmentRepository interface {
	List(ctx context.Context, createdBy *int) ([]models.Assessment, error)
	FindByID(ctx context.Context, id int) (*models.Assessment, error)
	Create(ctx context.Context, a *models.Assessment) error
	Update(ctx context.Context, id int, patch models.AssessmentPatch) (*models.Assessment, error)
}

// AssessmentService manages the assessment builder.
type AssessmentService struct {
	repo      AssessmentRepository
	questions generator.QuestionGenerator
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewAssessmentService constructs an AssessmentService.
func NewAssessmentService(repo AssessmentRepository, questions generator.QuestionGenerator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AssessmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if questions == nil {
		questions = generator.NewTemplateQuestioner(nil)
	}
	return &AssessmentService{repo: repo, questions: questions, validator: validate, metrics: metrics, logger: logger}
}

// List returns assessments, optionally only those created by createdBy.
func (s *AssessmentService) List(ctx context.Context, createdBy *int) ([]models.Assessment, error) {
	items, err := s.repo.List(ctx, createdBy)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list assessments")
	}
	return items, nil
}

// Get returns an assessment by id.
func (s *AssessmentService) Get(ctx context.Context, id int) (*models.Assessment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Assessment not found", "failed to get assessment")
	}
	return a, nil
}

// Create stores a new assessment, generating questions when none were supplied.
func (s *AssessmentService) Create(ctx context.Context, req models.CreateAssessmentRequest) (*models.Assessment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid assessment payload")
	}

	types := req.QuestionTypes
	if len(types) == 0 {
		types = []string{models.QuestionTypeMultipleChoice}
	}
	status := req.Status
	if status == "" {
		status = models.AssessmentDraft
	}

	questions := req.Questions
	if !models.HasJSON(questions) {
		generated, err := s.questions.Generate(ctx, generator.QuestionSpec{
			Subject:        req.Subject,
			TotalQuestions: req.TotalQuestions,
			Difficulty:     req.Difficulty,
			QuestionTypes:  types,
		})
		if err != nil {
			return nil, appErrors.Internal(err, "failed to generate questions")
		}
		s.metrics.RecordGeneration("questions")
		if questions, err = json.Marshal(generated); err != nil {
			return nil, appErrors.Internal(err, "failed to encode questions")
		}
	}

	a := &models.Assessment{
		Title:          req.Title,
		Subject:        req.Subject,
		Grade:          req.Grade,
		Duration:       req.Duration,
		TotalQuestions: req.TotalQuestions,
		Difficulty:     req.Difficulty,
		QuestionTypes:  types,
		Questions:      questions,
		CreatedBy:      req.CreatedBy,
		Status:         status,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, appErrors.Internal(err, "failed to create assessment")
	}

	s.logger.Info("assessment created", zap.Int("assessment_id", a.ID), zap.Int("created_by", a.CreatedBy))
	return a, nil
}

// Update applies patch to the assessment with id.
func (s *AssessmentService) Update(ctx context.Context, id int, patch models.AssessmentPatch) (*models.Assessment, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Validation(err, "invalid assessment update")
	}
	a, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, lookupError(err, "Assessment not found", "failed to update assessment")
	}
	return a, nil
}
