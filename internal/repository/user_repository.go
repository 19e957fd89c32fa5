package repository

import (
	"context"
	"sort"
	"time"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
)

// UserRepository provides store access for user accounts.
type UserRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s, now: utcNow}
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	user, ok := store.Get[models.User](r.store, store.KindUsers, id)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

// FindByUsername returns the user with the exact username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findFirst(func(u models.User) bool { return u.Username == username })
}

// FindByEmail returns the user with the exact email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findFirst(func(u models.User) bool { return u.Email == email })
}

// ListByRole returns users whose role equals role. The comparison is case-sensitive.
func (r *UserRepository) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	users := store.Filter(r.store, store.KindUsers, func(u models.User) bool { return u.Role == role })
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Create assigns an id and creation time, then stores the user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = r.store.AllocateID()
	user.CreatedAt = r.now()
	r.store.Put(store.KindUsers, user.ID, *user)
	return nil
}

func (r *UserRepository) findFirst(match func(models.User) bool) (*models.User, error) {
	user, ok := store.FirstByID(r.store, store.KindUsers, func(u models.User) int { return u.ID }, match)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
