package carrier

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
)

// VehicleType is the kind of vehicle a carrier operates. It has no effect on
// capacity, which is stored per carrier; it exists for fleet filtering.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
	VehicleTruck      VehicleType = "truck"
)

// VehicleTypeValues returns all valid vehicle types in declaration order.
func VehicleTypeValues() []VehicleType {
	return []VehicleType{VehicleMotorcycle, VehicleCar, VehicleVan, VehicleTruck}
}

// ParseVehicleType converts a raw string into a VehicleType.
func ParseVehicleType(value string) (VehicleType, error) {
	for _, v := range VehicleTypeValues() {
		if value == string(v) {
			return v, nil
		}
	}

	return "", errs.NewValueIsInvalidErrorWithCause("vehicle type",
		fmt.Errorf("%q is not one of: %s", value, joinVehicleTypes(VehicleTypeValues())))
}

// Validate checks that the VehicleType is one of the closed set of values.
func (v VehicleType) Validate() error {
	_, err := ParseVehicleType(string(v))
	return err
}

func (v VehicleType) String() string {
	return string(v)
}

func joinVehicleTypes(types []VehicleType) string {
	parts := make([]string, len(types))
	for i, v := range types {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
