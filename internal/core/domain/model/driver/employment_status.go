package driver

import (
	"fmt"

	"tastyfood/internal/pkg/errs"
)

// EmploymentStatus describes whether a driver is currently employed and
// eligible for dispatch. Only Active drivers appear on the assignable roster;
// Inactive drivers stay on record so past orders keep their history.
type EmploymentStatus int

const (
	// StatusUnknown represents an invalid or undefined employment status.
	StatusUnknown EmploymentStatus = iota

	// StatusActive means the driver is employed and eligible for dispatch.
	StatusActive

	// StatusInactive means the driver is off the roster but kept on record.
	StatusInactive
)

func getEmploymentStatusStrings() map[EmploymentStatus]string {
	return map[EmploymentStatus]string{
		StatusUnknown:  "Unknown",
		StatusActive:   "Active",
		StatusInactive: "Inactive",
	}
}

// EmploymentStatusFromString parses the persisted or API representation of an
// employment status. Only "Active" and "Inactive" are accepted.
func EmploymentStatusFromString(s string) (EmploymentStatus, error) {
	switch s {
	case "Active":
		return StatusActive, nil
	case "Inactive":
		return StatusInactive, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"employment status",
			fmt.Errorf("%q is not a valid employment status", s),
		)
	}
}

// Validate checks that the EmploymentStatus holds one of the defined values.
func (s EmploymentStatus) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause(
			"employment status",
			fmt.Errorf("%d is not a valid employment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s EmploymentStatus) String() string {
	if str, ok := getEmploymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the driver is eligible for dispatch.
func (s EmploymentStatus) IsActive() bool {
	return s == StatusActive
}
