package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
	"courier/internal/pkg/guard"
)

var (
	ErrUpdateUserCommandIsNotConstructed = errors.New(
		"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
	)
)

// UpdateUserCommand represents a partial update to a user account. Nil and
// empty fields are left unchanged.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	firstName string
	lastName  string
	phone     *string
	role      *user.Role
	status    *user.Status

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command carrying the fields to change.
// First and last name travel together; empty strings mean no change.
func NewUpdateUserCommand(
	userID kernel.UUID,
	firstName, lastName string,
	phone *string,
	role *user.Role,
	status *user.Status,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
		cmd.setStatus(status),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) UserID() kernel.UUID  { return c.userID }
func (c UpdateUserCommand) FirstName() string    { return c.firstName }
func (c UpdateUserCommand) LastName() string     { return c.lastName }
func (c UpdateUserCommand) Phone() *string       { return c.phone }
func (c UpdateUserCommand) Role() *user.Role     { return c.role }
func (c UpdateUserCommand) Status() *user.Status { return c.status }

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setRole(role *user.Role) error {
	if role == nil {
		return nil
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateUserCommand) setStatus(status *user.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
