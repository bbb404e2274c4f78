// Package tracking records the event trail a parcel leaves while moving
// through the network.
package tracking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// EventType classifies a tracking event.
type EventType string

const (
	EventPickedUp  EventType = "picked_up"
	EventInTransit EventType = "in_transit"
	EventDelivered EventType = "delivered"
	EventFailed    EventType = "failed"
)

func EventTypeValues() []EventType {
	return []EventType{EventPickedUp, EventInTransit, EventDelivered, EventFailed}
}

// ParseEventType converts a raw string into an EventType.
func ParseEventType(value string) (EventType, error) {
	for _, e := range EventTypeValues() {
		if value == string(e) {
			return e, nil
		}
	}

	parts := make([]string, len(EventTypeValues()))
	for i, e := range EventTypeValues() {
		parts[i] = string(e)
	}
	return "", errs.NewValueIsInvalidErrorWithCause("tracking event type",
		fmt.Errorf("%q is not one of: %s", value, strings.Join(parts, ", ")))
}

func (e EventType) Validate() error {
	_, err := ParseEventType(string(e))
	return err
}

func (e EventType) String() string {
	return string(e)
}

var (
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")
)

// Event is an immutable entry in an order's tracking history. Only the free
// text comment may be amended after creation.
type Event struct {
	id         kernel.UUID
	orderID    kernel.UUID
	eventType  EventType
	location   *kernel.GeoPoint
	comment    string
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewEvent records a tracking event at the current time.
func NewEvent(id, orderID kernel.UUID, eventType EventType, location *kernel.GeoPoint, comment string) (*Event, error) {
	e := &Event{
		location:   location,
		comment:    comment,
		recordedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setEventType(eventType),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func RestoreEvent(
	id, orderID kernel.UUID,
	eventType EventType,
	location *kernel.GeoPoint,
	comment string,
	recordedAt time.Time,
) (*Event, error) {
	e := &Event{
		location:   location,
		comment:    comment,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setEventType(eventType),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e *Event) ID() kernel.UUID            { return e.id }
func (e *Event) OrderID() kernel.UUID       { return e.orderID }
func (e *Event) Type() EventType            { return e.eventType }
func (e *Event) Location() *kernel.GeoPoint { return e.location }
func (e *Event) Comment() string            { return e.comment }
func (e *Event) RecordedAt() time.Time      { return e.recordedAt }

// AddComment appends free text to the event, separated by a semicolon when a
// comment already exists.
func (e *Event) AddComment(comment string) {
	if comment == "" {
		return
	}
	if e.comment == "" {
		e.comment = comment
		return
	}
	e.comment = e.comment + "; " + comment
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	e.orderID = orderID
	return nil
}

func (e *Event) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}
