package commands

import (
	"errors"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a request to edit a roster entry: rename the
// driver and/or change the employment status. The full target state is
// supplied, so a status-only edit repeats the current name.
//
// Example:
//
//	cmd, err := NewUpdateDriverCommand(driverID, "Maria", "Santos", driver.StatusInactive)
//	if err != nil {
//	    return fmt.Errorf("invalid driver update: %w", err)
//	}
//
//	handler := NewUpdateDriverCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	firstName string
	lastName  string
	status    driver.EmploymentStatus

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update an existing driver.
// The driver ID, both name parts and a valid employment status are required.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	firstName, lastName string,
	status driver.EmploymentStatus,
) (UpdateDriverCommand, error) {
	command := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setFirstName(firstName),
		command.setLastName(lastName),
		command.setStatus(status),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverCommandIsNotConstructed if validation fails.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver being edited.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FirstName returns the driver's target first name.
func (c UpdateDriverCommand) FirstName() string {
	return c.firstName
}

// LastName returns the driver's target last name.
func (c UpdateDriverCommand) LastName() string {
	return c.lastName
}

// Status returns the driver's target employment status.
func (c UpdateDriverCommand) Status() driver.EmploymentStatus {
	return c.status
}

func (c *UpdateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrDriverFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *UpdateDriverCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrDriverLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *UpdateDriverCommand) setStatus(status driver.EmploymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
