package commands

import (
	"errors"
	"fmt"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/pricing"
	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNoItemsSelected = errors.New("at least one item with a positive quantity is required")
)

// ItemSelection is one cart entry in a checkout request: which menu item and
// how many. Names and prices are not accepted from the client; they are
// resolved against the catalog by the handler.
type ItemSelection struct {
	ItemID   int
	Quantity int
}

// CreateOrderCommand represents a checkout request: the selected items, the
// reward and tip choices, and the delivery address. The tip selection and
// address are validated and normalized at construction so the handler only
// ever sees well-formed values.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    []ItemSelection{{ItemID: 3, Quantity: 2}},
//	    true, 0.20, "",
//	    "100 Congress Ave", "", "Austin", "TX", "78701",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items         []ItemSelection
	rewardApplied bool
	tip           pricing.TipSelection
	address       kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command.
//
// Tip resolution: a non-empty customTip always wins and must parse as a
// non-negative amount; otherwise tipRate must be one of the selectable
// percentages, with 0 meaning the 20% default.
func NewCreateOrderCommand(
	items []ItemSelection,
	rewardApplied bool,
	tipRate float64,
	customTip string,
	street, apt, city, state, zip string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard:         guard.NewConstructorGuard(),
		rewardApplied: rewardApplied,
	}

	if err := errors.Join(
		command.setItems(items),
		command.setTip(tipRate, customTip),
		command.setAddress(street, apt, city, state, zip),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns the selected menu items with quantities.
func (c CreateOrderCommand) Items() []ItemSelection {
	return c.items
}

// RewardApplied reports whether the 10% reward discount was requested.
func (c CreateOrderCommand) RewardApplied() bool {
	return c.rewardApplied
}

// Tip returns the resolved tip selection.
func (c CreateOrderCommand) Tip() pricing.TipSelection {
	return c.tip
}

// Address returns the validated delivery address.
func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateOrderCommand) setItems(items []ItemSelection) error {
	kept := make([]ItemSelection, 0, len(items))
	for _, item := range items {
		if item.ItemID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"item ID",
				fmt.Errorf("%d is not greater than 0", item.ItemID),
			)
		}
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}

	if len(kept) == 0 {
		return ErrNoItemsSelected
	}

	c.items = kept
	return nil
}

func (c *CreateOrderCommand) setTip(tipRate float64, customTip string) error {
	if customTip != "" {
		tip, err := pricing.NewCustomTip(customTip)
		if err != nil {
			return err
		}
		c.tip = tip
		return nil
	}

	if tipRate == 0 {
		c.tip = pricing.DefaultTipSelection()
		return nil
	}

	tip, err := pricing.NewPercentageTip(decimal.NewFromFloat(tipRate))
	if err != nil {
		return err
	}
	c.tip = tip
	return nil
}

func (c *CreateOrderCommand) setAddress(street, apt, city, state, zip string) error {
	address, err := kernel.NewAddress(street, apt, city, state, zip)
	if err != nil {
		return err
	}

	c.address = address
	return nil
}
