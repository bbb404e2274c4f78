package commands

import (
	"context"
)

// UpdateUserCommandHandler applies partial updates to a user account.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for user update operations.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the user, applies the requested changes and persists the
// result within a transaction.
func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
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

	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if cmd.FirstName() != "" || cmd.LastName() != "" {
		firstName, lastName := cmd.FirstName(), cmd.LastName()
		if firstName == "" {
			firstName = aggregate.FirstName()
		}
		if lastName == "" {
			lastName = aggregate.LastName()
		}
		if err = aggregate.Rename(firstName, lastName); err != nil {
			return err
		}
	}

	if phone := cmd.Phone(); phone != nil {
		aggregate.ChangePhone(*phone)
	}

	if role := cmd.Role(); role != nil {
		if err = aggregate.ChangeRole(*role); err != nil {
			return err
		}
	}

	if status := cmd.Status(); status != nil {
		if err = aggregate.ChangeStatus(*status); err != nil {
			return err
		}
	}

	if err = userRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
