package order

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")
	ErrWeightIsNegative         = errs.NewValueIsInvalidError("weight must not be negative")
	ErrTotalAmountIsNegative    = errs.NewValueIsInvalidError("total amount must not be negative")
)

// Order is the aggregate root for a shipment request. It tracks the parcel
// from creation through carrier assignment to delivery or cancellation.
//
// Invariants:
//   - tracking number is non-empty (uniqueness is enforced by storage)
//   - weight and total amount are non-negative
//   - status and priority are drawn from their closed enumerations
//   - every mutation refreshes the update timestamp
//
// The lifecycle guards are intentionally minimal (see Status); only
// cancellation of a delivered order is refused.
type Order struct {
	id                   kernel.UUID
	trackingNumber       string
	clientID             kernel.UUID
	requestedAt          time.Time
	estimatedDeliveryAt  time.Time
	deliveredAt          *time.Time
	originAddressID      kernel.UUID
	destinationAddressID kernel.UUID
	status               Status
	priority             Priority
	weight               decimal.Decimal
	dimensions           string
	totalAmount          decimal.Decimal
	carrierID            *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in pending status with the request date and both
// timestamps set to the current time. All invariants are validated; on any
// violation the joined validation errors are returned.
func NewOrder(
	id kernel.UUID,
	trackingNumber string,
	clientID kernel.UUID,
	estimatedDeliveryAt time.Time,
	originAddressID kernel.UUID,
	destinationAddressID kernel.UUID,
	priority Priority,
	weight decimal.Decimal,
	dimensions string,
	totalAmount decimal.Decimal,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:              StatusPending,
		requestedAt:         now,
		estimatedDeliveryAt: estimatedDeliveryAt,
		dimensions:          dimensions,
		createdAt:           now,
		updatedAt:           now,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingNumber(trackingNumber),
		o.setClientID(clientID),
		o.setOriginAddressID(originAddressID),
		o.setDestinationAddressID(destinationAddressID),
		o.setPriority(priority),
		o.setWeight(weight),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Used by the
// persistence mapper; all fields including timestamps come from storage.
func RestoreOrder(
	id kernel.UUID,
	trackingNumber string,
	clientID kernel.UUID,
	requestedAt time.Time,
	estimatedDeliveryAt time.Time,
	deliveredAt *time.Time,
	originAddressID kernel.UUID,
	destinationAddressID kernel.UUID,
	status Status,
	priority Priority,
	weight decimal.Decimal,
	dimensions string,
	totalAmount decimal.Decimal,
	carrierID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		requestedAt:         requestedAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		deliveredAt:         deliveredAt,
		dimensions:          dimensions,
		carrierID:           carrierID,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingNumber(trackingNumber),
		o.setClientID(clientID),
		o.setOriginAddressID(originAddressID),
		o.setDestinationAddressID(destinationAddressID),
		o.setStatus(status),
		o.setPriority(priority),
		o.setWeight(weight),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) TrackingNumber() string         { return o.trackingNumber }
func (o *Order) ClientID() kernel.UUID          { return o.clientID }
func (o *Order) RequestedAt() time.Time         { return o.requestedAt }
func (o *Order) EstimatedDeliveryAt() time.Time { return o.estimatedDeliveryAt }
func (o *Order) DeliveredAt() *time.Time        { return o.deliveredAt }
func (o *Order) OriginAddressID() kernel.UUID   { return o.originAddressID }
func (o *Order) DestinationAddressID() kernel.UUID {
	return o.destinationAddressID
}
func (o *Order) Status() Status               { return o.status }
func (o *Order) Priority() Priority           { return o.priority }
func (o *Order) Weight() decimal.Decimal      { return o.weight }
func (o *Order) Dimensions() string           { return o.dimensions }
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }
func (o *Order) CarrierID() *kernel.UUID      { return o.carrierID }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// AssignCarrier sets the carrier reference. A pending order moves to
// processing; any other status is left unchanged, so re-assignment never
// reverts a later state. The update timestamp is always refreshed.
func (o *Order) AssignCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	o.carrierID = &carrierID
	if o.status == StatusPending {
		o.status = StatusProcessing
	}
	o.touch()
	return nil
}

// MarkDelivered unconditionally sets the status to delivered and records the
// actual delivery time. There is no guard against double delivery; a repeat
// call overwrites the delivery timestamp.
func (o *Order) MarkDelivered() {
	o.status = StatusDelivered
	now := time.Now().UTC()
	o.deliveredAt = &now
	o.touch()
}

// Cancel sets the status to cancelled unless the order was already delivered;
// delivered orders are immutable to cancellation and are left untouched.
func (o *Order) Cancel() {
	if o.status == StatusDelivered {
		return
	}
	o.status = StatusCancelled
	o.touch()
}

// ChangeStatus overwrites the status with any valid value. Used by the update
// endpoint where admins and assigned carriers drive the status directly;
// prefer MarkDelivered and Cancel for those transitions so their side effects
// apply.
func (o *Order) ChangeStatus(status Status) error {
	if err := o.setStatus(status); err != nil {
		return err
	}
	o.touch()
	return nil
}

// ChangePriority overwrites the priority with any valid value.
func (o *Order) ChangePriority(priority Priority) error {
	if err := o.setPriority(priority); err != nil {
		return err
	}
	o.touch()
	return nil
}

// Reschedule overwrites the estimated delivery date.
func (o *Order) Reschedule(estimatedDeliveryAt time.Time) {
	o.estimatedDeliveryAt = estimatedDeliveryAt
	o.touch()
}

// IsPending reports whether the order is awaiting processing.
func (o *Order) IsPending() bool { return o.status == StatusPending }

// IsInTransit reports whether the order is currently being delivered.
func (o *Order) IsInTransit() bool { return o.status == StatusInTransit }

// IsDelivered reports whether the order reached its destination.
func (o *Order) IsDelivered() bool { return o.status == StatusDelivered }

// IsExpress reports whether the order carries express priority.
func (o *Order) IsExpress() bool { return o.priority == PriorityExpress }

// DaysSinceRequest returns the whole days elapsed since the request date.
func (o *Order) DaysSinceRequest() int {
	return int(time.Now().UTC().Sub(o.requestedAt).Hours() / 24)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setOriginAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.originAddressID = addressID
	return nil
}

func (o *Order) setDestinationAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.destinationAddressID = addressID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return ErrWeightIsNegative
	}
	o.weight = weight
	return nil
}

func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if totalAmount.IsNegative() {
		return ErrTotalAmountIsNegative
	}
	o.totalAmount = totalAmount
	return nil
}
