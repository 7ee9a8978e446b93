package commands

import (
	"errors"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// AssignDriverCommand represents a dispatch decision for one order: assign
// the named driver, or clear the assignment when no driver is given.
//
// Example:
//
//	orderNo, _ := kernel.OrderNumberFromString("FD0007")
//	driverID, _ := kernel.UUIDFromString(rawID)
//	cmd, err := NewAssignDriverCommand(orderNo, &driverID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	driverID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to staff or unstaff an order.
// A nil driverID means "remove the current assignment".
func NewAssignDriverCommand(orderNumber kernel.OrderNumber, driverID *kernel.UUID) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderNumber returns the order being staffed.
func (c AssignDriverCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// DriverID returns the driver to assign, or nil to unassign.
func (c AssignDriverCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}

	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
