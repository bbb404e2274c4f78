package order

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Priority classifies an order's delivery urgency.
type Priority string

const (
	PriorityNormal  Priority = "normal"
	PriorityExpress Priority = "express"
)

// PriorityValues returns all valid priorities in declaration order.
func PriorityValues() []Priority {
	return []Priority{PriorityNormal, PriorityExpress}
}

// ParsePriority converts a raw string into a Priority. The returned error
// enumerates the valid values so it can be surfaced directly to API callers.
func ParsePriority(value string) (Priority, error) {
	for _, p := range PriorityValues() {
		if value == string(p) {
			return p, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause("order priority",
		fmt.Errorf("%q is not one of: %s, %s", value, PriorityNormal, PriorityExpress))
}

// Validate checks that the Priority is one of the closed set of values.
func (p Priority) Validate() error {
	_, err := ParsePriority(string(p))
	return err
}

func (p Priority) String() string {
	return string(p)
}
