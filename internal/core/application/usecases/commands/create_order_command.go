package commands

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new shipment.
// Weight, dimensions and amount describe the parcel; the two address
// references must already exist.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	trackingNumber       string
	clientID             kernel.UUID
	estimatedDeliveryAt  time.Time
	originAddressID      kernel.UUID
	destinationAddressID kernel.UUID
	priority             order.Priority
	weight               decimal.Decimal
	dimensions           string
	totalAmount          decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment.
// Identifier, tracking number and priority are validated here; parcel
// invariants are enforced by the order aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	trackingNumber string,
	clientID kernel.UUID,
	estimatedDeliveryAt time.Time,
	originAddressID kernel.UUID,
	destinationAddressID kernel.UUID,
	priority order.Priority,
	weight decimal.Decimal,
	dimensions string,
	totalAmount decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		estimatedDeliveryAt: estimatedDeliveryAt,
		weight:              weight,
		dimensions:          dimensions,
		totalAmount:         totalAmount,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setClientID(clientID),
		cmd.setOriginAddressID(originAddressID),
		cmd.setDestinationAddressID(destinationAddressID),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID              { return c.orderID }
func (c CreateOrderCommand) TrackingNumber() string            { return c.trackingNumber }
func (c CreateOrderCommand) ClientID() kernel.UUID             { return c.clientID }
func (c CreateOrderCommand) EstimatedDeliveryAt() time.Time    { return c.estimatedDeliveryAt }
func (c CreateOrderCommand) OriginAddressID() kernel.UUID      { return c.originAddressID }
func (c CreateOrderCommand) DestinationAddressID() kernel.UUID { return c.destinationAddressID }
func (c CreateOrderCommand) Priority() order.Priority          { return c.priority }
func (c CreateOrderCommand) Weight() decimal.Decimal           { return c.weight }
func (c CreateOrderCommand) Dimensions() string                { return c.dimensions }
func (c CreateOrderCommand) TotalAmount() decimal.Decimal      { return c.totalAmount }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setOriginAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.originAddressID = addressID
	return nil
}

func (c *CreateOrderCommand) setDestinationAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.destinationAddressID = addressID
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
