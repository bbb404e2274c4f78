package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
	"courier/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order if the requesting account may see
// it. The scoping rules match ListOrdersQuery, so an order outside the
// requester's scope is indistinguishable from a missing one.
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID
	role        user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order scoped to the requester.
func NewGetOrderQuery(orderID, requesterID kernel.UUID, role user.Role) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
		role.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:     orderID,
		requesterID: requesterID,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// RequesterID returns the account the lookup is scoped to.
func (q GetOrderQuery) RequesterID() kernel.UUID { return q.requesterID }

// Role returns the requesting account's role.
func (q GetOrderQuery) Role() user.Role { return q.role }
