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

// PaymentStatus is the settlement state of a payment attempt.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func PaymentStatusValues() []PaymentStatus {
	return []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed}
}

// ParsePaymentStatus converts a raw string into a PaymentStatus.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	for _, s := range PaymentStatusValues() {
		if value == string(s) {
			return s, nil
		}
	}

	parts := make([]string, len(PaymentStatusValues()))
	for i, s := range PaymentStatusValues() {
		parts[i] = string(s)
	}
	return "", errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not one of: %s", value, strings.Join(parts, ", ")))
}

func (s PaymentStatus) Validate() error {
	_, err := ParsePaymentStatus(string(s))
	return err
}

func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

func PaymentMethodValues() []PaymentMethod {
	return []PaymentMethod{MethodCash, MethodCard, MethodTransfer}
}

// ParsePaymentMethod converts a raw string into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, m := range PaymentMethodValues() {
		if value == string(m) {
			return m, nil
		}
	}

	parts := make([]string, len(PaymentMethodValues()))
	for i, m := range PaymentMethodValues() {
		parts[i] = string(m)
	}
	return "", errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not one of: %s", value, strings.Join(parts, ", ")))
}

func (m PaymentMethod) Validate() error {
	_, err := ParsePaymentMethod(string(m))
	return err
}

func (m PaymentMethod) String() string {
	return string(m)
}

var (
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

	ErrPaymentIsNotPending = errs.NewValueIsInvalidError("payment is not pending")
)

// Payment is an attempt to settle an invoice. A payment starts pending and
// ends either completed or failed; the outcome is final.
type Payment struct {
	id        kernel.UUID
	invoiceID kernel.UUID
	amount    decimal.Decimal
	method    PaymentMethod
	status    PaymentStatus
	paidAt    *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewPayment(id, invoiceID kernel.UUID, amount decimal.Decimal, method PaymentMethod) (*Payment, error) {
	now := time.Now().UTC()
	p := &Payment{
		status:    PaymentPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setInvoiceID(invoiceID),
		p.setAmount(amount),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func RestorePayment(
	id, invoiceID kernel.UUID,
	amount decimal.Decimal,
	method PaymentMethod,
	status PaymentStatus,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	p := &Payment{
		paidAt:    paidAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setInvoiceID(invoiceID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID         { return p.id }
func (p *Payment) InvoiceID() kernel.UUID  { return p.invoiceID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() PaymentMethod   { return p.method }
func (p *Payment) Status() PaymentStatus   { return p.status }
func (p *Payment) PaidAt() *time.Time      { return p.paidAt }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }

// Complete marks a pending payment as settled and records the time.
func (p *Payment) Complete() error {
	if p.status != PaymentPending {
		return ErrPaymentIsNotPending
	}
	now := time.Now().UTC()
	p.status = PaymentCompleted
	p.paidAt = &now
	p.touch()
	return nil
}

// Fail marks a pending payment as unsuccessful.
func (p *Payment) Fail() error {
	if p.status != PaymentPending {
		return ErrPaymentIsNotPending
	}
	p.status = PaymentFailed
	p.touch()
	return nil
}

func (p *Payment) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("invoice id", err)
	}
	p.invoiceID = invoiceID
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsNotPositive
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
