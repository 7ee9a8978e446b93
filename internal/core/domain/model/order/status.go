package order

import (
	"fmt"

	"tastyfood/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Completed ──> Delivered
//	   │
//	   └──(driver assignment does not change the status)
//
// An order stays Pending while drivers are assigned, swapped or
// unassigned; only completing it with a delivery time moves it forward.
// Completed and Delivered are terminal for dispatch: no driver change
// is allowed from either, and Delivered permits no transition at all.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	// Orders in this status may have a driver assigned, swapped or removed.
	Pending

	// Completed indicates staff closed out the order with a delivery time.
	// The only remaining transition is to Delivered.
	Completed

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Completed, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending", "Completed", or "Delivered" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the order lifecycle is over for dispatch
// purposes. Completed and Delivered orders do not occupy a driver and
// cannot have their driver changed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Delivered
}

// ValidateAssign checks if the status allows changing the assigned driver
// without performing any transition.
//
// Driver assignment, reassignment and unassignment are only allowed while
// the order is Pending. Attempting it on a Completed or Delivered order
// returns an InvalidTransitionError, which typically signals a stale
// client view of the dispatch board.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewInvalidTransitionError(s.String(), "assign driver to")
	}
	return nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed
//
// Invalid transitions:
//   - Completed -> Completed (already completed)
//   - Delivered -> Completed (lifecycle is over)
//   - Unknown -> Completed (invalid initial state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Complete() to enforce state transitions.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), "complete")
	}

	return Completed, nil
}

// MarkDelivered transitions the status to Delivered.
//
// Valid transitions:
//   - Completed -> Delivered
//
// Invalid transitions:
//   - Pending -> Delivered (must be completed first)
//   - Delivered -> Delivered (already delivered)
//   - Unknown -> Delivered (invalid initial state)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// Delivered is a final state with no further transitions possible.
func (s Status) MarkDelivered() (Status, error) {
	if s != Completed {
		return 0, errs.NewInvalidTransitionError(s.String(), "mark delivered")
	}

	return Delivered, nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment when restoring an order from persistence.
//
// Business Rules:
//   - Pending orders may or may not have a driver
//   - Completed orders must have a driver
//   - Delivered orders must have a driver
//
// Parameters:
//   - driver: whether the order has a driver assigned
//
// Returns:
//   - error: validation error if status and driver assignment are inconsistent
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if !driver && s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}
