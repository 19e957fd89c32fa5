package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// DemoPassword is the password of every seeded demo account.
const DemoPassword = "password"

// DemoUsers are the accounts created by SeedDemo.
func DemoUsers() []models.CreateUserRequest {
	grade := "Grade 10"
	return []models.CreateUserRequest{
		{Username: "student1", Email: "student1@demo.com", Password: DemoPassword, Role: models.RoleStudent, Name: "Alex Morgan", Grade: &grade},
		{Username: "educator1", Email: "educator1@demo.com", Password: DemoPassword, Role: models.RoleEducator, Name: "Dr. Sarah Johnson", Subjects: []string{"Mathematics", "Physics"}},
		{Username: "admin1", Email: "admin1@demo.com", Password: DemoPassword, Role: models.RoleAdmin, Name: "John Admin"},
	}
}

// SeedDemo creates the demo accounts. Accounts that already exist are skipped.
func SeedDemo(ctx context.Context, users *UserService, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, req := range DemoUsers() {
		user, err := users.Create(ctx, req)
		if err != nil {
			if errors.Is(err, appErrors.ErrValidation) {
				logger.Debug("demo user skipped", zap.String("username", req.Username), zap.Error(err))
				continue
			}
			return err
		}
		logger.Info("demo user seeded", zap.Int("user_id", user.ID), zap.String("username", user.Username), zap.String("role", string(user.Role)))
	}
	return nil
}
