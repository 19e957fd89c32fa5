package repository

import (
	"context"
	"sort"
	"time"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
)

// StudentAssessmentRepository stores student attempts.
type StudentAssessmentRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewStudentAssessmentRepository constructs the repository.
func NewStudentAssessmentRepository(s *store.Store) *StudentAssessmentRepository {
	return &StudentAssessmentRepository{store: s, now: utcNow}
}

// ListByStudent returns every attempt of studentID.
func (r *StudentAssessmentRepository) ListByStudent(ctx context.Context, studentID int) ([]models.StudentAssessment, error) {
	items := store.Filter(r.store, store.KindStudentAssessments, func(sa models.StudentAssessment) bool {
		return sa.StudentID == studentID
	})
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// FindByStudentAndAssessment returns the earliest attempt matching both ids.
func (r *StudentAssessmentRepository) FindByStudentAndAssessment(ctx context.Context, studentID, assessmentID int) (*models.StudentAssessment, error) {
	sa, ok := store.FirstByID(r.store, store.KindStudentAssessments,
		func(sa models.StudentAssessment) int { return sa.ID },
		func(sa models.StudentAssessment) bool {
			return sa.StudentID == studentID && sa.AssessmentID == assessmentID
		})
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sa, nil
}

// Create stamps startedAt and stores the attempt.
func (r *StudentAssessmentRepository) Create(ctx context.Context, sa *models.StudentAssessment) error {
	sa.ID = r.store.AllocateID()
	sa.StartedAt = r.now()
	r.store.Put(store.KindStudentAssessments, sa.ID, *sa)
	return nil
}

// Update merges patch into the stored attempt.
func (r *StudentAssessmentRepository) Update(ctx context.Context, id int, patch models.StudentAssessmentPatch) (*models.StudentAssessment, error) {
	updated, ok := store.Mutate(r.store, store.KindStudentAssessments, id, patch.Apply)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &updated, nil
}
