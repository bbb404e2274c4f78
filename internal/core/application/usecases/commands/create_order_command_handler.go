package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"
)

// ErrTrackingNumberTaken is returned when another order already carries the
// requested tracking number.
var ErrTrackingNumberTaken = errors.New("tracking number is already in use")

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start pending with no carrier assigned.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. Checks tracking number
// uniqueness, builds the aggregate and persists it within a transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	_, err := orderRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err == nil {
		return ErrTrackingNumberTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.TrackingNumber(),
		cmd.ClientID(),
		cmd.EstimatedDeliveryAt(),
		cmd.OriginAddressID(),
		cmd.DestinationAddressID(),
		cmd.Priority(),
		cmd.Weight(),
		cmd.Dimensions(),
		cmd.TotalAmount(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
