// Package store defines the persistence interfaces the handlers depend on.
// Implementations live under internal/platform.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/avikoski/bloglist-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext passwords are never persisted.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their unique username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns all users, each carrying a reduced view of the blogs they
	// own (domain.BlogSummary), ordered by creation time.
	List(ctx context.Context) ([]*domain.User, error)
}
