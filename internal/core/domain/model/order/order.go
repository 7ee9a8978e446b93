package order

import (
	"errors"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/pricing"
	"tastyfood/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a placed customer order. It is the aggregate root that
// manages the order lifecycle from checkout through driver assignment to
// delivery.
//
// Order follows these invariants:
//   - Must have a valid, sequential order number
//   - Must have at least one snapshotted line
//   - Carries its priced breakdown (grand total identity holds by construction)
//   - Status transitions follow the Pending -> Completed -> Delivered machine
//   - Driver assignment is only possible while Pending
//   - The driver's name is denormalized onto the order at assignment time
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// orderNumber is the human-facing sequential identifier (FD0001, FD0002, ...)
	orderNumber kernel.OrderNumber

	// lines are the item snapshots taken at checkout
	lines []Line

	// pricing is the computed monetary breakdown for the order
	pricing pricing.Breakdown

	// address is the delivery destination
	address kernel.Address

	// deliveryETA is the quoted estimate in minutes
	deliveryETA int

	// status represents the current state in the order lifecycle
	status Status

	// driverID is the assigned driver's ID (nil if unassigned)
	driverID *kernel.UUID

	// driverFirstName and driverLastName are denormalized at assignment
	// time so order views never need a roster lookup
	driverFirstName string
	driverLastName  string

	// placedAt is when the order was placed
	placedAt time.Time

	// deliveryDate and deliveryTime are set when staff complete the order
	deliveryDate *time.Time
	deliveryTime *kernel.ClockTime

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order at checkout. This is the only way to create
// a fresh order, ensuring all business invariants are maintained.
//
// Parameters:
//   - orderNumber: the sequential number reserved for this order
//   - lines: non-empty item snapshots from the priced cart
//   - breakdown: the monetary breakdown computed for those lines
//   - address: validated delivery address
//   - deliveryETA: quoted estimate in minutes (must be positive)
//   - placedAt: the checkout timestamp
//
// The order starts in Pending status with no driver assigned.
func NewOrder(
	orderNumber kernel.OrderNumber,
	lines []Line,
	breakdown pricing.Breakdown,
	address kernel.Address,
	deliveryETA int,
	placedAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setOrderNumber(orderNumber),
		order.setLines(lines),
		order.setAddress(address),
		order.setDeliveryETA(deliveryETA),
		order.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	order.pricing = breakdown

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, re-validating the
// invariants that NewOrder and the lifecycle methods normally guarantee.
// Inconsistent rows (a Completed order without a driver, a driver ID without
// a name) are rejected rather than silently accepted.
func RestoreOrder(
	orderNumber kernel.OrderNumber,
	lines []Line,
	breakdown pricing.Breakdown,
	address kernel.Address,
	deliveryETA int,
	status Status,
	driverID *kernel.UUID,
	driverFirstName string,
	driverLastName string,
	placedAt time.Time,
	deliveryDate *time.Time,
	deliveryTime *kernel.ClockTime,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setOrderNumber(orderNumber),
		order.setLines(lines),
		order.setAddress(address),
		order.setDeliveryETA(deliveryETA),
		order.setPlacedAt(placedAt),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
		validateDriverSnapshot(driverID, driverFirstName, driverLastName),
	); err != nil {
		return nil, err
	}

	order.pricing = breakdown
	order.status = status
	order.driverID = driverID
	order.driverFirstName = driverFirstName
	order.driverLastName = driverLastName
	order.deliveryDate = deliveryDate
	order.deliveryTime = deliveryTime

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their order numbers.
// Orders are considered equal if they have the same number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderNumber.IsEqual(other.orderNumber)
}

// OrderNumber returns the order's sequential number.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// Lines returns the item snapshots taken at checkout.
func (o *Order) Lines() []Line {
	return o.lines
}

// Pricing returns the monetary breakdown for the order.
func (o *Order) Pricing() pricing.Breakdown {
	return o.pricing
}

// Address returns the delivery destination for the order.
func (o *Order) Address() kernel.Address {
	return o.address
}

// DeliveryETA returns the quoted delivery estimate in minutes.
func (o *Order) DeliveryETA() int {
	return o.deliveryETA
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID.
// Returns nil if no driver is assigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DriverFirstName returns the assigned driver's first name as snapshotted at
// assignment time, or "" when no driver is assigned.
func (o *Order) DriverFirstName() string {
	return o.driverFirstName
}

// DriverLastName returns the assigned driver's last name as snapshotted at
// assignment time, or "" when no driver is assigned.
func (o *Order) DriverLastName() string {
	return o.driverLastName
}

// PlacedAt returns the checkout timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliveryDate returns the date staff completed the order.
// Returns nil while the order is Pending.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// DeliveryTime returns the delivery time staff recorded at completion.
// Returns nil while the order is Pending.
func (o *Order) DeliveryTime() *kernel.ClockTime {
	return o.deliveryTime
}

// AssignDriver assigns the order to a driver, snapshotting the driver's name
// onto the order. The status does not change.
//
// This method enforces the following business rules:
//   - The driver ID must be valid and the name non-empty
//   - The order must be Pending
//   - Reassignment to a different driver is allowed while Pending
//
// Whether the driver is free to take the order is not knowable from a single
// aggregate; the dispatch service checks exclusivity across the active board
// before this method is called.
func (o *Order) AssignDriver(driverID kernel.UUID, firstName, lastName string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if firstName == "" {
		return errs.NewValueIsRequiredError("driver first name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("driver last name")
	}

	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.driverID = &driverID
	o.driverFirstName = firstName
	o.driverLastName = lastName
	return nil
}

// UnassignDriver removes the assigned driver and clears the snapshotted name.
// Like assignment, this is only allowed while the order is Pending.
func (o *Order) UnassignDriver() error {
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.driverID = nil
	o.driverFirstName = ""
	o.driverLastName = ""
	return nil
}

// Complete marks the order as completed with the recorded delivery time.
//
// This method enforces the following business rules:
//   - The order must be Pending
//   - A driver must be assigned
//
// The delivery time comes from staff input and is parsed before this method
// is called; completion frees the driver for the next order.
func (o *Order) Complete(deliveryDate time.Time, deliveryTime kernel.ClockTime) error {
	if o.driverID == nil {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(),
			"complete",
			errors.New("no driver assigned"),
		)
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryDate = &deliveryDate
	o.deliveryTime = &deliveryTime
	return nil
}

// MarkDelivered marks a completed order as delivered to the customer.
// Only valid from Completed; Delivered is the final state.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setOrderNumber validates and sets the order's sequential number.
// This is a private method used only during construction.
func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

// setLines validates and sets the order's line snapshots.
// This is a private method used only during construction.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	o.lines = lines
	return nil
}

// setAddress validates and sets the order's delivery address.
// This is a private method used only during construction.
func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

// setDeliveryETA validates and sets the quoted delivery estimate.
// This is a private method used only during construction.
func (o *Order) setDeliveryETA(deliveryETA int) error {
	if err := kernel.ValidateDeliveryETA(deliveryETA); err != nil {
		return err
	}
	o.deliveryETA = deliveryETA
	return nil
}

// setPlacedAt validates and sets the checkout timestamp.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = placedAt
	return nil
}

// validateDriverSnapshot checks that a driver ID and the denormalized name
// are either both present or both absent.
func validateDriverSnapshot(driverID *kernel.UUID, firstName, lastName string) error {
	hasName := firstName != "" || lastName != ""
	if driverID == nil && hasName {
		return errs.NewValueIsRequiredError("driver id")
	}
	if driverID != nil && (firstName == "" || lastName == "") {
		return errs.NewValueIsRequiredError("driver name")
	}
	return nil
}
