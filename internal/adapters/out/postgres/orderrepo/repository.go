package orderrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the order by primary key. Existing rows are updated in place,
// keeping their creation time.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var existing OrderDTO
	err := r.db.WithContext(ctx).First(&existing, "id = ?", aggregate.ID().Bytes()).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		dto := fromDomain(aggregate)
		// a concurrent insert of the same id resolves to an update
		if err = r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		updateFromDomain(&existing, aggregate)
		if err = r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves the order carrying the given tracking number.
func (r *GormOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByClient retrieves all orders placed by the client, oldest first.
func (r *GormOrderRepository) GetByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "client_id = ?", clientID.Bytes())
}

// GetByCarrier retrieves all orders assigned to the carrier, oldest first.
func (r *GormOrderRepository) GetByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*order.Order, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "carrier_id = ?", carrierID.Bytes())
}

// GetAllPending retrieves all orders awaiting assignment, oldest first.
func (r *GormOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, "status = ?", order.StatusPending.String())
}

// GetAllInTransit retrieves all orders out for delivery, oldest first.
func (r *GormOrderRepository) GetAllInTransit(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, "status = ?", order.StatusInTransit.String())
}

// Delete removes an order by ID. Deleting a missing order is a no-op.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error
}

func (r *GormOrderRepository) findAll(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
