// Package billing models invoices and payments raised against orders.
package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceIssued InvoiceStatus = "issued"
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceVoided InvoiceStatus = "voided"
)

func InvoiceStatusValues() []InvoiceStatus {
	return []InvoiceStatus{InvoiceIssued, InvoicePaid, InvoiceVoided}
}

// ParseInvoiceStatus converts a raw string into an InvoiceStatus.
func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	for _, s := range InvoiceStatusValues() {
		if value == string(s) {
			return s, nil
		}
	}

	parts := make([]string, len(InvoiceStatusValues()))
	for i, s := range InvoiceStatusValues() {
		parts[i] = string(s)
	}
	return "", errs.NewValueIsInvalidErrorWithCause("invoice status",
		fmt.Errorf("%q is not one of: %s", value, strings.Join(parts, ", ")))
}

func (s InvoiceStatus) Validate() error {
	_, err := ParseInvoiceStatus(string(s))
	return err
}

func (s InvoiceStatus) String() string {
	return string(s)
}

var (
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

	ErrInvoiceNumberIsRequired = errs.NewValueIsRequiredError("invoice number")
	ErrAmountIsNotPositive     = errs.NewValueIsInvalidError("amount must be positive")
	ErrInvoiceIsNotOpen        = errs.NewValueIsInvalidError("invoice is not open")
)

// Invoice is a charge raised against a delivered order. Once paid or voided
// it is immutable.
type Invoice struct {
	id            kernel.UUID
	orderID       kernel.UUID
	invoiceNumber string
	amount        decimal.Decimal
	status        InvoiceStatus
	issuedAt      time.Time
	paidAt        *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewInvoice(id, orderID kernel.UUID, invoiceNumber string, amount decimal.Decimal) (*Invoice, error) {
	now := time.Now().UTC()
	inv := &Invoice{
		status:    InvoiceIssued,
		issuedAt:  now,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setInvoiceNumber(invoiceNumber),
		inv.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

func RestoreInvoice(
	id, orderID kernel.UUID,
	invoiceNumber string,
	amount decimal.Decimal,
	status InvoiceStatus,
	issuedAt time.Time,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		issuedAt:  issuedAt,
		paidAt:    paidAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setInvoiceNumber(invoiceNumber),
		inv.setAmount(amount),
		inv.setStatus(status),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

func (inv *Invoice) Validate() error {
	if inv == nil {
		return ErrInvoiceIsNotConstructed
	}
	return inv.guard.Validate(ErrInvoiceIsNotConstructed)
}

func (inv *Invoice) ID() kernel.UUID         { return inv.id }
func (inv *Invoice) OrderID() kernel.UUID    { return inv.orderID }
func (inv *Invoice) InvoiceNumber() string   { return inv.invoiceNumber }
func (inv *Invoice) Amount() decimal.Decimal { return inv.amount }
func (inv *Invoice) Status() InvoiceStatus   { return inv.status }
func (inv *Invoice) IssuedAt() time.Time     { return inv.issuedAt }
func (inv *Invoice) PaidAt() *time.Time      { return inv.paidAt }
func (inv *Invoice) CreatedAt() time.Time    { return inv.createdAt }
func (inv *Invoice) UpdatedAt() time.Time    { return inv.updatedAt }

// MarkPaid settles an issued invoice and records the payment time.
func (inv *Invoice) MarkPaid() error {
	if inv.status != InvoiceIssued {
		return ErrInvoiceIsNotOpen
	}
	now := time.Now().UTC()
	inv.status = InvoicePaid
	inv.paidAt = &now
	inv.touch()
	return nil
}

// Void cancels an issued invoice.
func (inv *Invoice) Void() error {
	if inv.status != InvoiceIssued {
		return ErrInvoiceIsNotOpen
	}
	inv.status = InvoiceVoided
	inv.touch()
	return nil
}

func (inv *Invoice) touch() {
	inv.updatedAt = time.Now().UTC()
}

func (inv *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	inv.id = id
	return nil
}

func (inv *Invoice) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	inv.orderID = orderID
	return nil
}

func (inv *Invoice) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return ErrInvoiceNumberIsRequired
	}
	inv.invoiceNumber = invoiceNumber
	return nil
}

func (inv *Invoice) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsNotPositive
	}
	inv.amount = amount
	return nil
}

func (inv *Invoice) setStatus(status InvoiceStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	inv.status = status
	return nil
}
