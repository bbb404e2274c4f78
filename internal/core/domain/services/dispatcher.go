package services

import (
	"errors"

	"courier/internal/core/domain/model/carrier"
	"courier/internal/core/domain/model/order"
)

// ErrCarrierNotFound is returned when no suitable carrier is available for
// dispatch. This occurs when either no carriers are provided or none of the
// provided carriers is available with enough capacity for the order weight.
var ErrCarrierNotFound = errors.New("carrier not found")

// ErrOrderNotDispatchable is returned when the order is not in pending status
// and therefore not eligible for automatic assignment.
var ErrOrderNotDispatchable = errors.New("order is not pending")

// Dispatcher is a domain service responsible for picking a carrier for a
// pending order and executing the assignment on both aggregates.
//
// Business rules:
//   - only pending orders are dispatched
//   - only available carriers are considered
//   - the order weight must fit within the carrier capacity
//   - among eligible carriers the first one wins; callers control ordering
//     by passing carriers sorted the way they want (oldest first in practice)
//
// Carrier selection is deliberately simple. Distance based ranking needs the
// carrier's last reported position and the pickup coordinates, which are both
// optional, so the first fit rule is the one that always applies.
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch selects a carrier for the order and mutates both sides: the order
// gets the carrier reference and moves to processing, the carrier is flagged
// in transit. Neither aggregate is persisted here; the caller owns the
// transaction.
//
// Returns ErrOrderNotDispatchable if the order is not pending and
// ErrCarrierNotFound if no eligible carrier exists.
func (d Dispatcher) Dispatch(aggregate *order.Order, carriers []*carrier.Carrier) (*carrier.Carrier, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	if !aggregate.IsPending() {
		return nil, ErrOrderNotDispatchable
	}

	selected, err := d.findCarrier(aggregate, carriers)
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignCarrier(selected.ID()); err != nil {
		return nil, err
	}
	selected.MarkInTransit()

	return selected, nil
}

// findCarrier returns the first carrier that is available and can carry the
// order weight.
func (d Dispatcher) findCarrier(aggregate *order.Order, carriers []*carrier.Carrier) (*carrier.Carrier, error) {
	for _, c := range carriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsAvailable() {
			continue
		}

		if !c.CanCarry(aggregate.Weight()) {
			continue
		}

		return c, nil
	}

	return nil, ErrCarrierNotFound
}
