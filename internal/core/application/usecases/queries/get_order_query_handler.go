package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/model/user"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order row scoped by the requester's role.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Orders outside the requester's scope are
// reported as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders").
		Select("id, tracking_number, client_id, status, priority, weight, total_amount, carrier_id, estimated_delivery_at, delivered_at, created_at").
		Where("id = ?", query.OrderID().Bytes())

	switch query.Role() {
	case user.RoleClient:
		tx = tx.Where("client_id = ?", query.RequesterID().Bytes())
	case user.RoleCarrier:
		tx = tx.Where("carrier_id = ?", query.RequesterID().Bytes())
	case user.RoleAdmin, user.RoleOperator:
		// unscoped
	}

	row := tx.Row()
	order, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderResponse{}, err
	}

	return order, nil
}
