package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// InterventionRepository stores interventions.
type InterventionRepository interface {
	List(ctx context.Context, filter models.InterventionFilter) ([]models.Intervention, error)
	Create(ctx context.Context, i *models.Intervention) error
	Update(ctx context.Context, id int, patch models.InterventionPatch) (*models.Intervention, error)
}

// InterventionService manages educator interventions.
type InterventionService struct {
	repo      InterventionRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInterventionService constructs an InterventionService. cache may be nil.
func NewInterventionService(repo InterventionRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *InterventionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterventionService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns interventions matching filter.
func (s *InterventionService) List(ctx context.Context, filter models.InterventionFilter) ([]models.Intervention, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list interventions")
	}
	return items, nil
}

// Create stores a new intervention, pending unless a status is given.
func (s *InterventionService) Create(ctx context.Context, req models.CreateInterventionRequest) (*models.Intervention, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid intervention payload")
	}
	status := req.Status
	if status == "" {
		status = models.InterventionPending
	}
	i := &models.Intervention{
		StudentID:   req.StudentID,
		EducatorID:  req.EducatorID,
		Type:        req.Type,
		Description: req.Description,
		Status:      status,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, appErrors.Internal(err, "failed to create intervention")
	}
	s.invalidateAnalytics(ctx)
	s.logger.Info("intervention created", zap.Int("intervention_id", i.ID), zap.Int("student_id", i.StudentID), zap.String("type", string(i.Type)))
	return i, nil
}

// Update applies patch to the intervention with id.
func (s *InterventionService) Update(ctx context.Context, id int, patch models.InterventionPatch) (*models.Intervention, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Validation(err, "invalid intervention update")
	}
	i, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, lookupError(err, "Intervention not found", "failed to update intervention")
	}
	s.invalidateAnalytics(ctx)
	return i, nil
}

func (s *InterventionService) invalidateAnalytics(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, analyticsCachePattern); err != nil {
		s.logger.Warn("analytics cache not invalidated", zap.Error(err))
	}
}
