// Package client holds the customer profile attached to orders.
package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Type distinguishes personal customers from businesses.
type Type string

const (
	TypeIndividual Type = "individual"
	TypeCompany    Type = "company"
)

func TypeValues() []Type {
	return []Type{TypeIndividual, TypeCompany}
}

// ParseType converts a raw string into a Type, rejecting unknown values.
func ParseType(value string) (Type, error) {
	for _, ct := range TypeValues() {
		if value == string(ct) {
			return ct, nil
		}
	}

	parts := make([]string, len(TypeValues()))
	for i, ct := range TypeValues() {
		parts[i] = string(ct)
	}
	return "", errs.NewValueIsInvalidErrorWithCause("client type",
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
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

	ErrUserIDIsRequired = errs.NewValueIsRequiredError("user id")
	ErrTaxIDIsRequired  = errs.NewValueIsRequiredError("tax id")
)

// Client is the billing profile of a customer. Companies must carry a tax id;
// for individuals it is optional.
type Client struct {
	id         kernel.UUID
	userID     kernel.UUID
	clientType Type
	taxID      string
	company    string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewClient(id, userID kernel.UUID, clientType Type, taxID, company string) (*Client, error) {
	now := time.Now().UTC()
	c := &Client{
		company:   company,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setType(clientType),
	); err != nil {
		return nil, err
	}

	if clientType == TypeCompany && taxID == "" {
		return nil, ErrTaxIDIsRequired
	}
	c.taxID = taxID

	return c, nil
}

func RestoreClient(
	id, userID kernel.UUID,
	clientType Type,
	taxID, company string,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	c := &Client{
		taxID:     taxID,
		company:   company,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setType(clientType),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) ID() kernel.UUID      { return c.id }
func (c *Client) UserID() kernel.UUID  { return c.userID }
func (c *Client) Type() Type           { return c.clientType }
func (c *Client) TaxID() string        { return c.taxID }
func (c *Client) Company() string      { return c.company }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

// IsCompany reports whether the client bills as a business.
func (c *Client) IsCompany() bool { return c.clientType == TypeCompany }

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	c.userID = userID
	return nil
}

func (c *Client) setType(clientType Type) error {
	if err := clientType.Validate(); err != nil {
		return err
	}
	c.clientType = clientType
	return nil
}
