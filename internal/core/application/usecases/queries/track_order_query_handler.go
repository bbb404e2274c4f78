package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads one order row by tracking number.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking number lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the lookup.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Table("orders").
		Select("id, tracking_number, client_id, status, priority, weight, total_amount, carrier_id, estimated_delivery_at, delivered_at, created_at").
		Where("tracking_number = ?", query.TrackingNumber()).
		Row()

	order, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("tracking number", query.TrackingNumber())
		}
		return OrderResponse{}, err
	}

	return order, nil
}
