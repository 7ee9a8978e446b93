package commands

import (
	"errors"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents staff closing out an order with the time
// it was handed to the driver for final delivery.
//
// The delivery time arrives as free text in 12-hour clock form ("6:10 PM").
// It is parsed at construction: malformed input fails with an
// InvalidTimeFormatError before any transaction is opened, and is never
// silently defaulted.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber  kernel.OrderNumber
	deliveryTime kernel.ClockTime

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
// rawDeliveryTime must be a 12-hour clock time such as "6:10 PM".
func NewCompleteOrderCommand(orderNumber kernel.OrderNumber, rawDeliveryTime string) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setDeliveryTime(rawDeliveryTime),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderNumber returns the order being completed.
func (c CompleteOrderCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

// DeliveryTime returns the parsed 24-hour delivery time.
func (c CompleteOrderCommand) DeliveryTime() kernel.ClockTime {
	return c.deliveryTime
}

func (c *CompleteOrderCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CompleteOrderCommand) setDeliveryTime(raw string) error {
	deliveryTime, err := kernel.ParseClockTime12(raw)
	if err != nil {
		return err
	}

	c.deliveryTime = deliveryTime
	return nil
}
