package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/repository"
	"github.com/noah-isme/saarthi-api/internal/store"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			delete(m.data, key)
		}
	}
	return nil
}

type fixture struct {
	store    *store.Store
	users    *UserService
	userRepo *repository.UserRepository
}

func newFixture() *fixture {
	s := store.New()
	repo := repository.NewUserRepository(s)
	return &fixture{
		store:    s,
		userRepo: repo,
		users:    NewUserService(repo, nil, nil).WithHashCost(bcrypt.MinCost),
	}
}

func (f *fixture) createUser(ctx context.Context, username string, role models.UserRole) *models.User {
	user, err := f.users.Create(ctx, models.CreateUserRequest{
		Username: username,
		Email:    username + "@demo.com",
		Password: "password",
		Role:     role,
		Name:     strings.ToUpper(username[:1]) + username[1:],
	})
	if err != nil {
		panic(err)
	}
	return user
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
