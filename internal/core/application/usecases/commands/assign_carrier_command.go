package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrAssignCarrierCommandIsNotConstructed = errors.New(
		"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
	)
)

// AssignCarrierCommand represents a request to automatically assign a carrier
// to the given pending order.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to dispatch the given order.
func NewAssignCarrierCommand(orderID kernel.UUID) (AssignCarrierCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignCarrierCommand{}, err
	}

	return AssignCarrierCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

func (c AssignCarrierCommand) OrderID() kernel.UUID { return c.orderID }
