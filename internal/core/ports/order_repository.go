package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Multi-result queries return orders sorted by creation time, oldest first.
type OrderRepository interface {
	// Save persists an order aggregate, inserting it on first save and
	// updating it afterwards.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves the order carrying the given tracking
	// number. Tracking numbers are unique across all orders.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)

	// GetByClient retrieves all orders placed by the given client account.
	GetByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)

	// GetByCarrier retrieves all orders assigned to the given carrier.
	GetByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*order.Order, error)

	// GetAllPending retrieves all orders awaiting carrier assignment.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllInTransit retrieves all orders currently out for delivery.
	GetAllInTransit(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
