package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// UserRepository describes the persistence operations required by UserService.
type UserRepository interface {
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// UserService contains business logic for managing users.
type UserService struct {
	repo      UserRepository
	validator *validator.Validate
	logger    *zap.Logger
	hashCost  int
	cache     *CacheService
}

// NewUserService constructs a UserService.
func NewUserService(repo UserRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, logger: logger, hashCost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost, mostly to keep tests fast.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

// WithCache lets Create drop cached analytics, which embed the student roster.
func (s *UserService) WithCache(cache *CacheService) *UserService {
	s.cache = cache
	return s
}

// ListByRole returns users whose role equals role exactly.
func (s *UserService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	if role == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "role parameter required")
	}
	users, err := s.repo.ListByRole(ctx, models.UserRole(role))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list users")
	}
	return users, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user not found", "failed to get user")
	}
	return user, nil
}

// GetByUsername returns the user with the given username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, lookupError(err, "user not found", "failed to get user")
	}
	return user, nil
}

// GetByEmail returns the user with the given email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, lookupError(err, "user not found", "failed to get user")
	}
	return user, nil
}

// Create validates the payload, enforces unique username and email, and stores the account.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid user payload")
	}

	if err := s.ensureUnique(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Name:         req.Name,
		Grade:        req.Grade,
		Subjects:     req.Subjects,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, appErrors.Internal(err, "failed to create user")
	}

	s.logger.Info("user created", zap.Int("user_id", user.ID), zap.String("role", string(user.Role)))
	if err := s.cache.Invalidate(ctx, analyticsCachePattern); err != nil {
		s.logger.Warn("analytics cache not invalidated", zap.Error(err))
	}
	return user, nil
}

func (s *UserService) ensureUnique(ctx context.Context, username, email string) error {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return appErrors.Clone(appErrors.ErrValidation, "username already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return appErrors.Internal(err, "failed to check username")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return appErrors.Clone(appErrors.ErrValidation, "email already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return appErrors.Internal(err, "failed to check email")
	}
	return nil
}
