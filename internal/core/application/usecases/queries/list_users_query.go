package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
)

// ListUsersQuery retrieves all user accounts, optionally filtered by role.
// An empty role filter returns everyone.
type ListUsersQuery struct {
	roleFilter string

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a query for the account listing.
func NewListUsersQuery(roleFilter string) ListUsersQuery {
	return ListUsersQuery{
		roleFilter: roleFilter,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// RoleFilter returns the role to filter by, empty for all accounts.
func (q ListUsersQuery) RoleFilter() string { return q.roleFilter }

// UserResponse is the read model for one account row. The password hash is
// deliberately absent.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      string
	Status    string
	CreatedAt time.Time
}
