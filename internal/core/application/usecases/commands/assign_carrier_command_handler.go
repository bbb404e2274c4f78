package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/services"
)

var (
	// ErrNoAvailableCarriers is returned when no available carrier can take
	// the order.
	ErrNoAvailableCarriers = errors.New("no available carriers found")

	// ErrOrderNotAssignable is returned when the order is not pending and
	// therefore not eligible for automatic assignment.
	ErrOrderNotAssignable = errors.New("order is not assignable")
)

// AssignCarrierCommandHandler orchestrates automatic carrier assignment.
// The order and the selected carrier are updated within one transaction, so a
// carrier is never flagged in transit without the order referencing it.
type AssignCarrierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
func NewAssignCarrierCommandHandler(uowFactory UoWFactory) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and the available carriers, lets the dispatcher pick
// one and persists both aggregates. Returns ErrOrderNotAssignable for orders
// past pending and ErrNoAvailableCarriers when no carrier fits.
func (h AssignCarrierCommandHandler) Handle(ctx context.Context, cmd AssignCarrierCommand) error {
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
	carrierRepo := uow.CarrierRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	carriers, err := carrierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	selected, err := services.NewDispatcher().Dispatch(aggregate, carriers)
	if errors.Is(err, services.ErrOrderNotDispatchable) {
		return ErrOrderNotAssignable
	}
	if errors.Is(err, services.ErrCarrierNotFound) {
		return ErrNoAvailableCarriers
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	if err = carrierRepo.Save(ctx, selected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
