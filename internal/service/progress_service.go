package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// StudentProgressRepository stores progress records.
type StudentProgressRepository interface {
	List(ctx context.Context) ([]models.StudentProgress, error)
	ListByStudent(ctx context.Context, studentID int) ([]models.StudentProgress, error)
	FindByStudentAndSubject(ctx context.Context, studentID int, subject string) (*models.StudentProgress, error)
	Create(ctx context.Context, sp *models.StudentProgress) error
	Update(ctx context.Context, id int, patch models.StudentProgressPatch) (*models.StudentProgress, error)
}

// ProgressService manages per-subject student progress.
type ProgressService struct {
	repo      StudentProgressRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProgressService constructs a ProgressService. cache may be nil.
func NewProgressService(repo StudentProgressRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ProgressService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// ListByStudent returns the progress records of studentID.
func (s *ProgressService) ListByStudent(ctx context.Context, studentID int) ([]models.StudentProgress, error) {
	items, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list student progress")
	}
	return items, nil
}

// FindBySubject returns the first record of studentID for subject.
func (s *ProgressService) FindBySubject(ctx context.Context, studentID int, subject string) (*models.StudentProgress, error) {
	sp, err := s.repo.FindByStudentAndSubject(ctx, studentID, subject)
	if err != nil {
		return nil, lookupError(err, "Student progress not found", "failed to get student progress")
	}
	return sp, nil
}

// Create stores a progress record with progress 0, engagement 100 and low risk unless given.
func (s *ProgressService) Create(ctx context.Context, req models.CreateStudentProgressRequest) (*models.StudentProgress, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid student progress payload")
	}
	sp := &models.StudentProgress{
		StudentID:       req.StudentID,
		Subject:         req.Subject,
		EngagementScore: 100,
		RiskLevel:       models.RiskLow,
	}
	if req.Progress != nil {
		sp.Progress = *req.Progress
	}
	if req.EngagementScore != nil {
		sp.EngagementScore = *req.EngagementScore
	}
	if req.RiskLevel != "" {
		sp.RiskLevel = req.RiskLevel
	}
	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, appErrors.Internal(err, "failed to create student progress")
	}
	s.invalidateAnalytics(ctx)
	return sp, nil
}

// Update applies patch to the record with id and refreshes its last activity.
func (s *ProgressService) Update(ctx context.Context, id int, patch models.StudentProgressPatch) (*models.StudentProgress, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Validation(err, "invalid student progress update")
	}
	sp, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, lookupError(err, "Student progress not found", "failed to update student progress")
	}
	s.invalidateAnalytics(ctx)
	return sp, nil
}

func (s *ProgressService) invalidateAnalytics(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, analyticsCachePattern); err != nil {
		s.logger.Warn("analytics cache not invalidated", zap.Error(err))
	}
}
