package queries

import (
	"errors"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves a single order by its tracking number.
type TrackOrderQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking number lookup.
func NewTrackOrderQuery(trackingNumber string) (TrackOrderQuery, error) {
	if trackingNumber == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("tracking number")
	}

	return TrackOrderQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q TrackOrderQuery) TrackingNumber() string { return q.trackingNumber }
