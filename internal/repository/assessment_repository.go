package repository

import (
	"context"
	"sort"
	"time"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
)

// AssessmentRepository stores educator-authored assessments.
type AssessmentRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewAssessmentRepository constructs an assessment repository.
func NewAssessmentRepository(s *store.Store) *AssessmentRepository {
	return &AssessmentRepository{store: s, now: utcNow}
}

// List returns all assessments, or only those created by createdBy when it is set.
func (r *AssessmentRepository) List(ctx context.Context, createdBy *int) ([]models.Assessment, error) {
	assessments := store.Filter(r.store, store.KindAssessments, func(a models.Assessment) bool {
		return createdBy == nil || a.CreatedBy == *createdBy
	})
	sort.Slice(assessments, func(i, j int) bool { return assessments[i].ID < assessments[j].ID })
	return assessments, nil
}

// FindByID returns an assessment by identifier.
func (r *AssessmentRepository) FindByID(ctx context.Context, id int) (*models.Assessment, error) {
	a, ok := store.Get[models.Assessment](r.store, store.KindAssessments, id)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

// Create stamps the assessment and stores it.
func (r *AssessmentRepository) Create(ctx context.Context, a *models.Assessment) error {
	a.ID = r.store.AllocateID()
	a.CreatedAt = r.now()
	r.store.Put(store.KindAssessments, a.ID, *a)
	return nil
}

// Update merges patch into the stored assessment.
func (r *AssessmentRepository) Update(ctx context.Context, id int, patch models.AssessmentPatch) (*models.Assessment, error) {
	updated, ok := store.Mutate(r.store, store.KindAssessments, id, patch.Apply)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &updated, nil
}
