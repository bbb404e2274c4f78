package user

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// Role defines what a user account is allowed to do. Admins can do everything,
// operators manage orders on behalf of the business, clients create orders and
// carriers deliver them.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleClient   Role = "client"
	RoleCarrier  Role = "carrier"
)

// RoleValues returns all valid roles in declaration order.
func RoleValues() []Role {
	return []Role{RoleAdmin, RoleOperator, RoleClient, RoleCarrier}
}

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(value string) (Role, error) {
	for _, r := range RoleValues() {
		if value == string(r) {
			return r, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause("user role",
		fmt.Errorf("%q is not one of: %s", value, joinRoles(RoleValues())))
}

// Validate checks that the Role is one of the closed set of values.
func (r Role) Validate() error {
	_, err := ParseRole(string(r))
	return err
}

func (r Role) String() string {
	return string(r)
}

func joinRoles(roles []Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
