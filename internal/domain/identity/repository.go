package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the persistence interface for users
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *User) error
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByEmail finds a user by email address
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Update persists changes to an existing user
	Update(ctx context.Context, user *User) error
	// Delete removes a user. Used as a compensating action when student
	// creation fails after the user has been created.
	Delete(ctx context.Context, id uuid.UUID) error
}
