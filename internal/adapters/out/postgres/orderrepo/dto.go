// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Tracking numbers carry a unique index; status, client and carrier columns
// are indexed for the list queries.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber       string    `gorm:"uniqueIndex;not null"`
	ClientID             uuid.UUID `gorm:"type:uuid;index"`
	RequestedAt          time.Time `gorm:"not null"`
	EstimatedDeliveryAt  time.Time
	DeliveredAt          *time.Time
	OriginAddressID      uuid.UUID       `gorm:"type:uuid"`
	DestinationAddressID uuid.UUID       `gorm:"type:uuid"`
	Status               string          `gorm:"index;not null"`
	Priority             string          `gorm:"not null"`
	Weight               decimal.Decimal `gorm:"type:numeric(10,2)"`
	Dimensions           string
	TotalAmount          decimal.Decimal `gorm:"type:numeric(10,2)"`
	CarrierID            *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		TrackingNumber:       aggregate.TrackingNumber(),
		ClientID:             aggregate.ClientID().Bytes(),
		RequestedAt:          aggregate.RequestedAt(),
		EstimatedDeliveryAt:  aggregate.EstimatedDeliveryAt(),
		DeliveredAt:          aggregate.DeliveredAt(),
		OriginAddressID:      aggregate.OriginAddressID().Bytes(),
		DestinationAddressID: aggregate.DestinationAddressID().Bytes(),
		Status:               aggregate.Status().String(),
		Priority:             aggregate.Priority().String(),
		Weight:               aggregate.Weight(),
		Dimensions:           aggregate.Dimensions(),
		TotalAmount:          aggregate.TotalAmount(),
		CarrierID:            carrierID,
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// updateFromDomain copies the aggregate's current state onto an existing row,
// leaving identity and creation time untouched.
func updateFromDomain(dto *OrderDTO, aggregate *order.Order) {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	dto.TrackingNumber = aggregate.TrackingNumber()
	dto.ClientID = aggregate.ClientID().Bytes()
	dto.RequestedAt = aggregate.RequestedAt()
	dto.EstimatedDeliveryAt = aggregate.EstimatedDeliveryAt()
	dto.DeliveredAt = aggregate.DeliveredAt()
	dto.OriginAddressID = aggregate.OriginAddressID().Bytes()
	dto.DestinationAddressID = aggregate.DestinationAddressID().Bytes()
	dto.Status = aggregate.Status().String()
	dto.Priority = aggregate.Priority().String()
	dto.Weight = aggregate.Weight()
	dto.Dimensions = aggregate.Dimensions()
	dto.TotalAmount = aggregate.TotalAmount()
	dto.CarrierID = carrierID
	dto.UpdatedAt = aggregate.UpdatedAt()
}

// toDomain reconstructs the complete aggregate from a database row using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	originAddressID, err := kernel.UUIDFromBytes(dto.OriginAddressID[:])
	if err != nil {
		return nil, err
	}

	destinationAddressID, err := kernel.UUIDFromBytes(dto.DestinationAddressID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	return order.RestoreOrder(
		id,
		dto.TrackingNumber,
		clientID,
		dto.RequestedAt,
		dto.EstimatedDeliveryAt,
		dto.DeliveredAt,
		originAddressID,
		destinationAddressID,
		order.Status(dto.Status),
		order.Priority(dto.Priority),
		dto.Weight,
		dto.Dimensions,
		dto.TotalAmount,
		carrierID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
