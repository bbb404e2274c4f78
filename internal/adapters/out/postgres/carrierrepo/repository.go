package carrierrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/carrier"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierRepository implements ports.CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the carrier by primary key. Existing rows are updated in
// place, keeping their creation time.
func (r *GormCarrierRepository) Save(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var existing CarrierDTO
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

// Get retrieves a carrier by ID.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves carriers ready for assignment, oldest first.
func (r *GormCarrierRepository) GetAllAvailable(ctx context.Context) ([]*carrier.Carrier, error) {
	return r.findAll(ctx, "status = ?", carrier.StatusAvailable.String())
}

// GetByZone retrieves carriers working the given zone, oldest first.
func (r *GormCarrierRepository) GetByZone(ctx context.Context, zoneID kernel.UUID) ([]*carrier.Carrier, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "zone_id = ?", zoneID.Bytes())
}

// GetByVehicleType retrieves carriers operating the given vehicle, oldest first.
func (r *GormCarrierRepository) GetByVehicleType(ctx context.Context, vehicleType carrier.VehicleType) ([]*carrier.Carrier, error) {
	if err := vehicleType.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "vehicle_type = ?", vehicleType.String())
}

// Delete removes a carrier by ID. Deleting a missing carrier is a no-op.
func (r *GormCarrierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CarrierDTO{}, "id = ?", id.Bytes()).Error
}

func (r *GormCarrierRepository) findAll(ctx context.Context, query string, args ...any) ([]*carrier.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*carrier.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}

	return carriers, nil
}
