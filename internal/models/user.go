package models

import "time"

// UserRole represents the platform roles.
type UserRole string

const (
	RoleStudent  UserRole = "student"
	RoleEducator UserRole = "educator"
	RoleAdmin    UserRole = "admin"
)

// User represents a platform account. The password hash never leaves the server.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Grade        *string   `json:"grade"`
	Subjects     []string  `json:"subjects"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateUserRequest represents payload for creating users.
type CreateUserRequest struct {
	Username string   `json:"username" validate:"required,max=64"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,max=72"`
	Role     UserRole `json:"role" validate:"required,oneof=student educator admin"`
	Name     string   `json:"name" validate:"required,max=128"`
	Grade    *string  `json:"grade" validate:"omitempty,max=32"`
	Subjects []string `json:"subjects" validate:"omitempty,dive,required"`
}
