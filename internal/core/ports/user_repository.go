package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Save persists a user aggregate, inserting it on first save and
	// updating it afterwards.
	Save(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves the user registered under the given email.
	// Emails are stored lower case and are unique.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetByRole retrieves all users carrying the given role, sorted by
	// creation time, oldest first.
	GetByRole(ctx context.Context, role user.Role) ([]*user.User, error)

	// EmailExists reports whether a user is already registered under the
	// given email without loading the aggregate.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Delete removes a user by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
