package storage

import (
	"context"

	"github.com/ivolkov/syncpad/internal/models"
)

//go:generate moq -out users_mock.go . UserStorage

// UserStorage defines interface for user accounts on server
type UserStorage interface {
	// CreateUser creates a new user
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
