// Package queries contains read-only operations in the CQRS split. Query
// handlers bypass the aggregates and read projections straight from the
// database.
package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the orders visible to the requesting account.
// Clients see their own orders, carriers see the orders assigned to them,
// admins and operators see the pending backlog.
type ListOrdersQuery struct {
	requesterID kernel.UUID
	role        user.Role

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query scoped to the requesting account.
func NewListOrdersQuery(requesterID kernel.UUID, role user.Role) (ListOrdersQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		requesterID: requesterID,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// RequesterID returns the account the listing is scoped to.
func (q ListOrdersQuery) RequesterID() kernel.UUID { return q.requesterID }

// Role returns the requesting account's role.
func (q ListOrdersQuery) Role() user.Role { return q.role }

// OrderResponse is the read model for one order row.
type OrderResponse struct {
	ID                  kernel.UUID
	TrackingNumber      string
	ClientID            kernel.UUID
	Status              string
	Priority            string
	Weight              decimal.Decimal
	TotalAmount         decimal.Decimal
	CarrierID           *kernel.UUID
	EstimatedDeliveryAt time.Time
	DeliveredAt         *time.Time
	CreatedAt           time.Time
}
