package carrier

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// Status is the availability state of a carrier. Only available carriers are
// eligible for automatic assignment.
type Status string

const (
	StatusAvailable Status = "available"
	StatusInTransit Status = "in_transit"
	StatusInactive  Status = "inactive"
)

// StatusValues returns all valid carrier statuses in declaration order.
func StatusValues() []Status {
	return []Status{StatusAvailable, StatusInTransit, StatusInactive}
}

// ParseStatus converts a raw string into a Status, rejecting unknown values.
func ParseStatus(value string) (Status, error) {
	for _, s := range StatusValues() {
		if value == string(s) {
			return s, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause("carrier status",
		fmt.Errorf("%q is not one of: %s", value, joinCarrierStatuses(StatusValues())))
}

// Validate checks that the Status is one of the closed set of values.
func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}

func (s Status) String() string {
	return string(s)
}

func joinCarrierStatuses(statuses []Status) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
