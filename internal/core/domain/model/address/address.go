// Package address holds pickup and delivery locations referenced by orders.
package address

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Type marks whether an address is a home or a business location.
type Type string

const (
	TypeResidential Type = "residential"
	TypeCommercial  Type = "commercial"
)

func TypeValues() []Type {
	return []Type{TypeResidential, TypeCommercial}
}

// ParseType converts a raw string into a Type, rejecting unknown values.
func ParseType(value string) (Type, error) {
	for _, at := range TypeValues() {
		if value == string(at) {
			return at, nil
		}
	}

	parts := make([]string, len(TypeValues()))
	for i, at := range TypeValues() {
		parts[i] = string(at)
	}
	return "", errs.NewValueIsInvalidErrorWithCause("address type",
		fmt.Errorf("%q is not one of: %s", value, strings.Join(parts, ", ")))
}

func (t Type) Validate() error {
	_, err := ParseType(string(t))
	return err
}

func (t Type) String() string {
	return string(t)
}

var (
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

	ErrStreetIsRequired     = errs.NewValueIsRequiredError("street")
	ErrCityIsRequired       = errs.NewValueIsRequiredError("city")
	ErrPostalCodeIsRequired = errs.NewValueIsRequiredError("postal code")
)

// Address is a delivery location. The optional coordinates support distance
// based dispatching; textual fields are authoritative for the label.
type Address struct {
	id          kernel.UUID
	street      string
	city        string
	state       string
	postalCode  string
	country     string
	addressType Type
	location    *kernel.GeoPoint

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewAddress(
	id kernel.UUID,
	street, city, state, postalCode, country string,
	addressType Type,
	location *kernel.GeoPoint,
) (*Address, error) {
	now := time.Now().UTC()
	a := &Address{
		state:     state,
		country:   country,
		location:  location,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setStreet(street),
		a.setCity(city),
		a.setPostalCode(postalCode),
		a.setType(addressType),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func RestoreAddress(
	id kernel.UUID,
	street, city, state, postalCode, country string,
	addressType Type,
	location *kernel.GeoPoint,
	createdAt, updatedAt time.Time,
) (*Address, error) {
	a := &Address{
		state:     state,
		country:   country,
		location:  location,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setStreet(street),
		a.setCity(city),
		a.setPostalCode(postalCode),
		a.setType(addressType),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) ID() kernel.UUID            { return a.id }
func (a *Address) Street() string             { return a.street }
func (a *Address) City() string               { return a.city }
func (a *Address) State() string              { return a.state }
func (a *Address) PostalCode() string         { return a.postalCode }
func (a *Address) Country() string            { return a.country }
func (a *Address) Type() Type                 { return a.addressType }
func (a *Address) Location() *kernel.GeoPoint { return a.location }
func (a *Address) CreatedAt() time.Time       { return a.createdAt }
func (a *Address) UpdatedAt() time.Time       { return a.updatedAt }

// FullAddress returns the single line label used on shipping documents.
// Empty middle segments are skipped.
func (a *Address) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.street, a.city, a.state, a.postalCode, a.country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setType(addressType Type) error {
	if err := addressType.Validate(); err != nil {
		return err
	}
	a.addressType = addressType
	return nil
}
