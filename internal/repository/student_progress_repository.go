package repository

import (
	"context"
	"sort"
	"time"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
)

// StudentProgressRepository stores per-subject progress records.
type StudentProgressRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewStudentProgressRepository constructs the repository.
func NewStudentProgressRepository(s *store.Store) *StudentProgressRepository {
	return &StudentProgressRepository{store: s, now: utcNow}
}

// List returns every progress record.
func (r *StudentProgressRepository) List(ctx context.Context) ([]models.StudentProgress, error) {
	items := store.Values[models.StudentProgress](r.store, store.KindStudentProgress)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// ListByStudent returns the progress records of studentID.
func (r *StudentProgressRepository) ListByStudent(ctx context.Context, studentID int) ([]models.StudentProgress, error) {
	items := store.Filter(r.store, store.KindStudentProgress, func(sp models.StudentProgress) bool {
		return sp.StudentID == studentID
	})
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// FindByStudentAndSubject returns the earliest record for the student and subject.
func (r *StudentProgressRepository) FindByStudentAndSubject(ctx context.Context, studentID int, subject string) (*models.StudentProgress, error) {
	sp, ok := store.FirstByID(r.store, store.KindStudentProgress,
		func(sp models.StudentProgress) int { return sp.ID },
		func(sp models.StudentProgress) bool { return sp.StudentID == studentID && sp.Subject == subject })
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sp, nil
}

// Create stamps lastActivity and stores the record.
func (r *StudentProgressRepository) Create(ctx context.Context, sp *models.StudentProgress) error {
	sp.ID = r.store.AllocateID()
	sp.LastActivity = r.now()
	r.store.Put(store.KindStudentProgress, sp.ID, *sp)
	return nil
}

// Update merges patch into the stored record and refreshes lastActivity.
func (r *StudentProgressRepository) Update(ctx context.Context, id int, patch models.StudentProgressPatch) (*models.StudentProgress, error) {
	now := r.now()
	updated, ok := store.Mutate(r.store, store.KindStudentProgress, id, func(sp models.StudentProgress) models.StudentProgress {
		sp = patch.Apply(sp)
		sp.LastActivity = now
		return sp
	})
	if !ok {
		return nil, store.ErrNotFound
	}
	return &updated, nil
}
