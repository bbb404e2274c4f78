package order

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Statuses are stored as
// plain strings so they round-trip unchanged through the database and the API.
//
// The lifecycle is deliberately permissive:
//
//	pending ──> processing ──> in_transit ──> delivered
//	   │             │              │
//	   └─────────────┴──────────────┴──> cancelled
//
// Only cancellation of delivered orders is guarded; every other transition is
// a direct overwrite and callers are responsible for pre-checking semantic
// validity.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusInTransit  Status = "in_transit"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// StatusValues returns all valid statuses in declaration order.
func StatusValues() []Status {
	return []Status{StatusPending, StatusProcessing, StatusInTransit, StatusDelivered, StatusCancelled}
}

// ParseStatus converts a raw string into a Status. The returned error
// enumerates the valid values so it can be surfaced directly to API callers.
func ParseStatus(value string) (Status, error) {
	for _, s := range StatusValues() {
		if value == string(s) {
			return s, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not one of: %s", value, joinStatuses(StatusValues())))
}

// Validate checks that the Status is one of the closed set of values.
func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}

func (s Status) String() string {
	return string(s)
}

func joinStatuses(statuses []Status) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
