package kernel

import (
	"errors"
	"fmt"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Geographic coordinate bounds.
const (
	LatitudeMin  float64 = -90
	LatitudeMax  float64 = 90
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180
)

// ErrGeoPointIsNotConstructed indicates that a GeoPoint was created as a zero
// value instead of through the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is a value object representing a geographic coordinate pair.
// Latitude is bounded to [-90, 90] and longitude to [-180, 180]; the bounds
// are enforced at construction so a validated GeoPoint is always usable.
//
// GeoPoint is immutable. It is used for address coordinates, zone boundary
// rings, and tracking pings.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, validating both coordinates against their bounds.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		point.setLatitude(latitude),
		point.setLongitude(longitude),
	); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate ensures the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.latitude, p.longitude)
}

// IsEqual compares two points coordinate-wise. Both points must be constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	p.longitude = longitude
	return nil
}
