package commands

import (
	"context"
)

// DeleteUserCommandHandler removes user accounts.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the user within a transaction. Unknown identifiers surface
// as a not found error from the existence check.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := userRepo.Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
