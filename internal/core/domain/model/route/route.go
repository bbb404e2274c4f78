// Package route models a carrier's working day as an ordered list of stops.
package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Status is the execution state of a route.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func StatusValues() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(value string) (Status, error) {
	for _, s := range StatusValues() {
		if value == string(s) {
			return s, nil
		}
	}

	parts := make([]string, len(StatusValues()))
	for i, s := range StatusValues() {
		parts[i] = string(s)
	}
	return "", errs.NewValueIsInvalidErrorWithCause("route status",
		fmt.Errorf("%q is not one of: %s", value, strings.Join(parts, ", ")))
}

func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}

func (s Status) String() string {
	return string(s)
}

// Stop is one delivery on a route, in execution order.
type Stop struct {
	OrderID  kernel.UUID
	Sequence int
	Done     bool
}

var (
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

	ErrRouteHasNoStops      = errs.NewValueIsInvalidError("route needs at least one stop")
	ErrRouteIsNotPending    = errs.NewValueIsInvalidError("route is not pending")
	ErrRouteIsNotInProgress = errs.NewValueIsInvalidError("route is not in progress")
)

// Route groups a carrier's deliveries for a date. Stops are fixed once the
// route is created; execution only moves the status forward.
type Route struct {
	id        kernel.UUID
	carrierID kernel.UUID
	date      time.Time
	stops     []Stop
	status    Status

	startedAt   *time.Time
	completedAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

func NewRoute(id, carrierID kernel.UUID, date time.Time, stops []Stop) (*Route, error) {
	now := time.Now().UTC()
	r := &Route{
		date:      date,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCarrierID(carrierID),
		r.setStops(stops),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func RestoreRoute(
	id, carrierID kernel.UUID,
	date time.Time,
	stops []Stop,
	status Status,
	startedAt, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Route, error) {
	r := &Route{
		date:        date,
		startedAt:   startedAt,
		completedAt: completedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCarrierID(carrierID),
		r.setStops(stops),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID         { return r.id }
func (r *Route) CarrierID() kernel.UUID  { return r.carrierID }
func (r *Route) Date() time.Time         { return r.date }
func (r *Route) Status() Status          { return r.status }
func (r *Route) StartedAt() *time.Time   { return r.startedAt }
func (r *Route) CompletedAt() *time.Time { return r.completedAt }
func (r *Route) CreatedAt() time.Time    { return r.createdAt }
func (r *Route) UpdatedAt() time.Time    { return r.updatedAt }

// Stops returns a copy of the stop list in sequence order.
func (r *Route) Stops() []Stop {
	stops := make([]Stop, len(r.stops))
	copy(stops, r.stops)
	return stops
}

// Start moves a pending route to in progress and records the start time.
func (r *Route) Start() error {
	if r.status != StatusPending {
		return ErrRouteIsNotPending
	}
	now := time.Now().UTC()
	r.status = StatusInProgress
	r.startedAt = &now
	r.touch()
	return nil
}

// CompleteStop marks the stop carrying the given order as done.
func (r *Route) CompleteStop(orderID kernel.UUID) error {
	if r.status != StatusInProgress {
		return ErrRouteIsNotInProgress
	}
	for i := range r.stops {
		if r.stops[i].OrderID.IsEqual(orderID) {
			r.stops[i].Done = true
			r.touch()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("stop", orderID.String())
}

// Complete finishes an in progress route and records the completion time.
func (r *Route) Complete() error {
	if r.status != StatusInProgress {
		return ErrRouteIsNotInProgress
	}
	now := time.Now().UTC()
	r.status = StatusCompleted
	r.completedAt = &now
	r.touch()
	return nil
}

func (r *Route) touch() {
	r.updatedAt = time.Now().UTC()
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrier id", err)
	}
	r.carrierID = carrierID
	return nil
}

func (r *Route) setStops(stops []Stop) error {
	if len(stops) == 0 {
		return ErrRouteHasNoStops
	}
	for _, stop := range stops {
		if err := stop.OrderID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("stop order id", err)
		}
	}
	r.stops = make([]Stop, len(stops))
	copy(r.stops, stops)
	return nil
}

func (r *Route) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
