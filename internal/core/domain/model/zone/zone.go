// Package zone models the delivery areas carriers are assigned to.
package zone

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const boundaryMinPoints = 3

var (
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone")

	ErrZoneNameIsRequired = errs.NewValueIsRequiredError("zone name")
	ErrBoundaryIsTooSmall = errs.NewValueIsInvalidError("boundary needs at least three points")
	ErrBaseRateIsNegative = errs.NewValueIsInvalidError("base rate must not be negative")
)

// Zone is a named delivery area bounded by a polygon of coordinates.
// The base rate feeds into order pricing for deliveries inside the zone.
type Zone struct {
	id       kernel.UUID
	name     string
	boundary []kernel.GeoPoint
	baseRate decimal.Decimal
	active   bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewZone(id kernel.UUID, name string, boundary []kernel.GeoPoint, baseRate decimal.Decimal) (*Zone, error) {
	now := time.Now().UTC()
	z := &Zone{
		active:    true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setBoundary(boundary),
		z.setBaseRate(baseRate),
	); err != nil {
		return nil, err
	}

	return z, nil
}

func RestoreZone(
	id kernel.UUID,
	name string,
	boundary []kernel.GeoPoint,
	baseRate decimal.Decimal,
	active bool,
	createdAt, updatedAt time.Time,
) (*Zone, error) {
	z := &Zone{
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setBoundary(boundary),
		z.setBaseRate(baseRate),
	); err != nil {
		return nil, err
	}

	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) ID() kernel.UUID           { return z.id }
func (z *Zone) Name() string              { return z.name }
func (z *Zone) BaseRate() decimal.Decimal { return z.baseRate }
func (z *Zone) IsActive() bool            { return z.active }
func (z *Zone) CreatedAt() time.Time      { return z.createdAt }
func (z *Zone) UpdatedAt() time.Time      { return z.updatedAt }

// Boundary returns a copy of the polygon so callers cannot mutate it.
func (z *Zone) Boundary() []kernel.GeoPoint {
	boundary := make([]kernel.GeoPoint, len(z.boundary))
	copy(boundary, z.boundary)
	return boundary
}

// Activate returns the zone to the dispatchable set.
func (z *Zone) Activate() {
	z.active = true
	z.touch()
}

// Deactivate removes the zone from the dispatchable set.
func (z *Zone) Deactivate() {
	z.active = false
	z.touch()
}

// ChangeBaseRate updates the pricing rate for the zone.
func (z *Zone) ChangeBaseRate(baseRate decimal.Decimal) error {
	if err := z.setBaseRate(baseRate); err != nil {
		return err
	}
	z.touch()
	return nil
}

func (z *Zone) touch() {
	z.updatedAt = time.Now().UTC()
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setBoundary(boundary []kernel.GeoPoint) error {
	if len(boundary) < boundaryMinPoints {
		return ErrBoundaryIsTooSmall
	}
	for _, point := range boundary {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	z.boundary = make([]kernel.GeoPoint, len(boundary))
	copy(z.boundary, boundary)
	return nil
}

func (z *Zone) setBaseRate(baseRate decimal.Decimal) error {
	if baseRate.IsNegative() {
		return ErrBaseRateIsNegative
	}
	z.baseRate = baseRate
	return nil
}
