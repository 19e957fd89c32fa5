package repository

import (
	"context"
	"sort"
	"time"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
)

// InterventionRepository stores educator interventions.
type InterventionRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewInterventionRepository constructs the repository.
func NewInterventionRepository(s *store.Store) *InterventionRepository {
	return &InterventionRepository{store: s, now: utcNow}
}

// List returns interventions matching every set field of filter.
func (r *InterventionRepository) List(ctx context.Context, filter models.InterventionFilter) ([]models.Intervention, error) {
	items := store.Filter(r.store, store.KindInterventions, func(i models.Intervention) bool {
		if filter.StudentID != nil && i.StudentID != *filter.StudentID {
			return false
		}
		if filter.EducatorID != nil && i.EducatorID != *filter.EducatorID {
			return false
		}
		return true
	})
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Create stamps createdAt and stores the intervention.
func (r *InterventionRepository) Create(ctx context.Context, i *models.Intervention) error {
	i.ID = r.store.AllocateID()
	i.CreatedAt = r.now()
	r.store.Put(store.KindInterventions, i.ID, *i)
	return nil
}

// Update merges patch into the stored intervention.
func (r *InterventionRepository) Update(ctx context.Context, id int, patch models.InterventionPatch) (*models.Intervention, error) {
	updated, ok := store.Mutate(r.store, store.KindInterventions, id, patch.Apply)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &updated, nil
}
