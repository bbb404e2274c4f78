// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence.
package carrierrepo

import (
	"time"

	"courier/internal/core/domain/model/carrier"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarrierDTO represents the database structure for persisting carriers.
// The optional location is stored as a pair of nullable coordinates.
type CarrierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"not null"`
	Phone        string
	LicensePlate string          `gorm:"not null"`
	VehicleType  string          `gorm:"index;not null"`
	Capacity     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status       string          `gorm:"index;not null"`
	ZoneID       *uuid.UUID      `gorm:"type:uuid;index"`
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming convention to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	var zoneID *uuid.UUID
	if id := aggregate.ZoneID(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	var latitude, longitude *float64
	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		latitude = &lat
		longitude = &lon
	}

	return CarrierDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		LicensePlate: aggregate.LicensePlate(),
		VehicleType:  aggregate.VehicleType().String(),
		Capacity:     aggregate.Capacity(),
		Status:       aggregate.Status().String(),
		ZoneID:       zoneID,
		Latitude:     latitude,
		Longitude:    longitude,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// updateFromDomain copies the aggregate's current state onto an existing row,
// leaving identity and creation time untouched.
func updateFromDomain(dto *CarrierDTO, aggregate *carrier.Carrier) {
	var zoneID *uuid.UUID
	if id := aggregate.ZoneID(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	var latitude, longitude *float64
	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		latitude = &lat
		longitude = &lon
	}

	dto.UserID = aggregate.UserID().Bytes()
	dto.Name = aggregate.Name()
	dto.Phone = aggregate.Phone()
	dto.LicensePlate = aggregate.LicensePlate()
	dto.VehicleType = aggregate.VehicleType().String()
	dto.Capacity = aggregate.Capacity()
	dto.Status = aggregate.Status().String()
	dto.ZoneID = zoneID
	dto.Latitude = latitude
	dto.Longitude = longitude
	dto.UpdatedAt = aggregate.UpdatedAt()
}

// toDomain reconstructs the aggregate from a database row using
// RestoreCarrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}

		zoneID = &zID
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}

		location = &point
	}

	return carrier.RestoreCarrier(
		id,
		userID,
		dto.Name,
		dto.Phone,
		dto.LicensePlate,
		carrier.VehicleType(dto.VehicleType),
		dto.Capacity,
		carrier.Status(dto.Status),
		zoneID,
		location,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
