package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrDeleteUserCommandIsNotConstructed = errors.New(
		"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
	)
)

// DeleteUserCommand represents a request to remove a user account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to remove the given user.
func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) UserID() kernel.UUID { return c.userID }
