package driver

import (
	"errors"
	"fmt"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrFirstNameIsRequired is returned when attempting to create a driver without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")
	// ErrLastNameIsRequired is returned when attempting to create a driver without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("last name")
	// ErrUsernameIsRequired is returned when attempting to create a driver without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver on the restaurant's roster.
// It is an aggregate root that manages the driver's identity and employment
// status.
//
// The roster is intentionally thin: whether a driver is busy is not stored
// here. Availability is derived from the active order board, so the roster
// can never disagree with the orders about who is carrying what.
//
// Business rules:
//   - Driver must have a valid UUID, non-empty first name, last name and username
//   - Employment status is either Active or Inactive
//   - Only Active drivers are eligible for dispatch
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// firstName and lastName are the driver's display name
	firstName string
	lastName  string
	// username is the unique login handle
	username string
	// status is the driver's employment status
	status EmploymentStatus
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified identity.
// This is the only way to create a valid fresh Driver instance.
//
// New drivers start Active: hiring someone and immediately benching them is
// not a flow the roster supports.
//
// Parameters:
//   - id: Unique identifier for the driver (must be valid UUID)
//   - firstName: Driver's first name (must be non-empty)
//   - lastName: Driver's last name (must be non-empty)
//   - username: Unique login handle (must be non-empty)
//
// Returns:
//   - *Driver: A fully initialized driver in Active status
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewDriver(id kernel.UUID, firstName, lastName, username string) (*Driver, error) {
	driver := &Driver{
		guard:  guard.NewConstructorGuard(),
		status: StatusActive,
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setFirstName(firstName),
		driver.setLastName(lastName),
		driver.setUsername(username),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its persisted employment status.
func RestoreDriver(
	id kernel.UUID,
	firstName, lastName, username string,
	status EmploymentStatus,
) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setFirstName(firstName),
		driver.setLastName(lastName),
		driver.setUsername(username),
		driver.setStatus(status),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// IsEqual compares two drivers for equality based on their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Driver was properly constructed using a factory
// method. The zero value of Driver is invalid and will fail this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// FirstName returns the driver's first name.
func (d *Driver) FirstName() string {
	return d.firstName
}

// LastName returns the driver's last name.
func (d *Driver) LastName() string {
	return d.lastName
}

// FullName returns "FirstName LastName" for display.
func (d *Driver) FullName() string {
	return fmt.Sprintf("%s %s", d.firstName, d.lastName)
}

// Username returns the driver's unique login handle.
func (d *Driver) Username() string {
	return d.username
}

// Status returns the driver's employment status.
func (d *Driver) Status() EmploymentStatus {
	return d.status
}

// IsActive reports whether the driver is eligible for dispatch.
func (d *Driver) IsActive() bool {
	return d.status.IsActive()
}

// Rename updates the driver's display name. Orders that already carry this
// driver keep the name that was snapshotted onto them at assignment time.
func (d *Driver) Rename(firstName, lastName string) error {
	return errors.Join(
		d.setFirstName(firstName),
		d.setLastName(lastName),
	)
}

// Activate puts the driver back on the dispatch roster.
func (d *Driver) Activate() {
	d.status = StatusActive
}

// Deactivate takes the driver off the dispatch roster. Existing assignments
// are untouched; only future assignability is affected.
func (d *Driver) Deactivate() {
	d.status = StatusInactive
}

// setID sets the driver's unique identifier with validation.
// This is an internal setter used during driver construction.
func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

// setFirstName sets the driver's first name with validation.
func (d *Driver) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	d.firstName = firstName
	return nil
}

// setLastName sets the driver's last name with validation.
func (d *Driver) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	d.lastName = lastName
	return nil
}

// setUsername sets the driver's login handle with validation.
func (d *Driver) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	d.username = username
	return nil
}

// setStatus sets the driver's employment status with validation.
// Used during restoration from persistent state.
func (d *Driver) setStatus(status EmploymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}
