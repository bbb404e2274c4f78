package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order rows scoped by the requester's role.
// Clients are filtered by client_id, carriers by carrier_id; admins and
// operators get the pending backlog.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for role scoped order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by creation time, oldest
// first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").
		Select("id, tracking_number, client_id, status, priority, weight, total_amount, carrier_id, estimated_delivery_at, delivered_at, created_at").
		Order("created_at ASC")

	switch query.Role() {
	case user.RoleClient:
		tx = tx.Where("client_id = ?", query.RequesterID().Bytes())
	case user.RoleCarrier:
		tx = tx.Where("carrier_id = ?", query.RequesterID().Bytes())
	case user.RoleAdmin, user.RoleOperator:
		tx = tx.Where("status = ?", order.StatusPending.String())
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type scanFunc func(dest ...any) error

func scanOrderRow(scan scanFunc) (OrderResponse, error) {
	var (
		row       OrderResponse
		id        uuid.UUID
		clientID  uuid.UUID
		carrierID uuid.NullUUID
	)

	err := scan(
		&id,
		&row.TrackingNumber,
		&clientID,
		&row.Status,
		&row.Priority,
		&row.Weight,
		&row.TotalAmount,
		&carrierID,
		&row.EstimatedDeliveryAt,
		&row.DeliveredAt,
		&row.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if row.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderResponse{}, err
	}
	if carrierID.Valid {
		cID, cErr := kernel.UUIDFromBytes(carrierID.UUID[:])
		if cErr != nil {
			return OrderResponse{}, cErr
		}
		row.CarrierID = &cID
	}

	return row, nil
}
