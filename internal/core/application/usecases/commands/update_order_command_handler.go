package commands

import (
	"context"

	"courier/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial updates to an order.
// Status changes go through the aggregate's transition methods so their side
// effects apply: delivered records the delivery time, cancelled respects the
// delivered guard.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the requested changes and persists the
// result within a transaction.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if status := cmd.Status(); status != nil {
		switch *status {
		case order.StatusDelivered:
			aggregate.MarkDelivered()
		case order.StatusCancelled:
			aggregate.Cancel()
		default:
			if err = aggregate.ChangeStatus(*status); err != nil {
				return err
			}
		}
	}

	if priority := cmd.Priority(); priority != nil {
		if err = aggregate.ChangePriority(*priority); err != nil {
			return err
		}
	}

	if estimatedDeliveryAt := cmd.EstimatedDeliveryAt(); estimatedDeliveryAt != nil {
		aggregate.Reschedule(*estimatedDeliveryAt)
	}

	if err = orderRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
