package user

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// Status is the account state. Inactive and suspended accounts cannot log in.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// StatusValues returns all valid account statuses in declaration order.
func StatusValues() []Status {
	return []Status{StatusActive, StatusInactive, StatusSuspended}
}

// ParseStatus converts a raw string into a Status, rejecting unknown values.
func ParseStatus(value string) (Status, error) {
	for _, s := range StatusValues() {
		if value == string(s) {
			return s, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause("user status",
		fmt.Errorf("%q is not one of: %s", value, joinUserStatuses(StatusValues())))
}

// Validate checks that the Status is one of the closed set of values.
func (s Status) Validate() error {
	_, err := ParseStatus(string(s))
	return err
}

func (s Status) String() string {
	return string(s)
}

func joinUserStatuses(statuses []Status) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
