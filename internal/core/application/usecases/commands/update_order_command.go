package commands

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update to an order. Nil fields are
// left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	status              *order.Status
	priority            *order.Priority
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command carrying the fields to change.
// Provided status and priority values are validated up front.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	status *order.Status,
	priority *order.Priority,
	estimatedDeliveryAt *time.Time,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		estimatedDeliveryAt: estimatedDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setPriority(priority),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID            { return c.orderID }
func (c UpdateOrderCommand) Status() *order.Status           { return c.status }
func (c UpdateOrderCommand) Priority() *order.Priority       { return c.priority }
func (c UpdateOrderCommand) EstimatedDeliveryAt() *time.Time { return c.estimatedDeliveryAt }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setPriority(priority *order.Priority) error {
	if priority == nil {
		return nil
	}
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
