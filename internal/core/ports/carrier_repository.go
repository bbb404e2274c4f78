package ports

import (
	"context"

	"courier/internal/core/domain/model/carrier"
	"courier/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
// Multi-result queries return carriers sorted by creation time, oldest first.
type CarrierRepository interface {
	// Save persists a carrier aggregate, inserting it on first save and
	// updating it afterwards.
	Save(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAllAvailable retrieves all carriers ready for new assignments.
	GetAllAvailable(ctx context.Context) ([]*carrier.Carrier, error)

	// GetByZone retrieves all carriers working the given zone.
	GetByZone(ctx context.Context, zoneID kernel.UUID) ([]*carrier.Carrier, error)

	// GetByVehicleType retrieves all carriers operating the given vehicle.
	GetByVehicleType(ctx context.Context, vehicleType carrier.VehicleType) ([]*carrier.Carrier, error)

	// Delete removes a carrier by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
