package carrier

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
	// created through NewCarrier or RestoreCarrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")

	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("license plate")
	ErrCapacityIsNegative     = errs.NewValueIsInvalidError("capacity must not be negative")
)

// Carrier is a delivery agent with a vehicle. Its user account (userID) holds
// the credentials; the carrier record holds the operational state used by
// dispatching: availability, zone and load capacity in kilograms.
type Carrier struct {
	id           kernel.UUID
	userID       kernel.UUID
	name         string
	phone        string
	licensePlate string
	vehicleType  VehicleType
	capacity     decimal.Decimal
	status       Status
	zoneID       *kernel.UUID
	location     *kernel.GeoPoint

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCarrier creates an available Carrier with no zone and no known location.
func NewCarrier(
	id kernel.UUID,
	userID kernel.UUID,
	name string,
	phone string,
	licensePlate string,
	vehicleType VehicleType,
	capacity decimal.Decimal,
) (*Carrier, error) {
	now := time.Now().UTC()
	c := &Carrier{
		phone:     phone,
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
		c.setLicensePlate(licensePlate),
		c.setVehicleType(vehicleType),
		c.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a Carrier from persisted state.
func RestoreCarrier(
	id kernel.UUID,
	userID kernel.UUID,
	name string,
	phone string,
	licensePlate string,
	vehicleType VehicleType,
	capacity decimal.Decimal,
	status Status,
	zoneID *kernel.UUID,
	location *kernel.GeoPoint,
	createdAt time.Time,
	updatedAt time.Time,
) (*Carrier, error) {
	c := &Carrier{
		phone:     phone,
		zoneID:    zoneID,
		location:  location,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
		c.setLicensePlate(licensePlate),
		c.setVehicleType(vehicleType),
		c.setCapacity(capacity),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Carrier instance was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Carrier) ID() kernel.UUID            { return c.id }
func (c *Carrier) UserID() kernel.UUID        { return c.userID }
func (c *Carrier) Name() string               { return c.name }
func (c *Carrier) Phone() string              { return c.phone }
func (c *Carrier) LicensePlate() string       { return c.licensePlate }
func (c *Carrier) VehicleType() VehicleType   { return c.vehicleType }
func (c *Carrier) Capacity() decimal.Decimal  { return c.capacity }
func (c *Carrier) Status() Status             { return c.status }
func (c *Carrier) ZoneID() *kernel.UUID       { return c.zoneID }
func (c *Carrier) Location() *kernel.GeoPoint { return c.location }
func (c *Carrier) CreatedAt() time.Time       { return c.createdAt }
func (c *Carrier) UpdatedAt() time.Time       { return c.updatedAt }

// IsAvailable reports whether the carrier can take new assignments.
func (c *Carrier) IsAvailable() bool { return c.status == StatusAvailable }

// CanCarry reports whether a parcel of the given weight fits within the
// carrier's capacity.
func (c *Carrier) CanCarry(weight decimal.Decimal) bool {
	return weight.LessThanOrEqual(c.capacity)
}

// MarkInTransit flags the carrier as out on a delivery.
func (c *Carrier) MarkInTransit() {
	c.status = StatusInTransit
	c.touch()
}

// MarkAvailable flags the carrier as ready for new assignments.
func (c *Carrier) MarkAvailable() {
	c.status = StatusAvailable
	c.touch()
}

// Deactivate removes the carrier from the dispatchable pool.
func (c *Carrier) Deactivate() {
	c.status = StatusInactive
	c.touch()
}

// AssignZone sets the working zone the carrier covers.
func (c *Carrier) AssignZone(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	c.zoneID = &zoneID
	c.touch()
	return nil
}

// MoveTo records the carrier's last reported position.
func (c *Carrier) MoveTo(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = &location
	c.touch()
	return nil
}

func (c *Carrier) touch() {
	c.updatedAt = time.Now().UTC()
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}
	c.licensePlate = licensePlate
	return nil
}

func (c *Carrier) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	c.vehicleType = vehicleType
	return nil
}

// setCapacity accepts zero; a carrier without load capacity is still a valid
// record, it just never passes CanCarry.
func (c *Carrier) setCapacity(capacity decimal.Decimal) error {
	if capacity.IsNegative() {
		return ErrCapacityIsNegative
	}
	c.capacity = capacity
	return nil
}

func (c *Carrier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
