package pricing

import (
	"fmt"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

// CartLine is one menu item in a cart: the item identity, the unit price at
// the time the cart was built, and a quantity. Quantity is clamped to zero on
// every mutation and can never go negative.
type CartLine struct {
	itemID    int
	name      string
	unitPrice kernel.Money
	quantity  int
}

// NewCartLine creates a cart line. The item ID must be positive, the name
// non-empty and the unit price non-negative. A negative quantity is clamped
// to zero rather than rejected.
func NewCartLine(itemID int, name string, unitPrice kernel.Money, quantity int) (CartLine, error) {
	if itemID <= 0 {
		return CartLine{}, errs.NewValueIsInvalidErrorWithCause(
			"item ID",
			fmt.Errorf("%d is not greater than 0", itemID),
		)
	}
	if name == "" {
		return CartLine{}, errs.NewValueIsRequiredError("item name")
	}
	if unitPrice.IsNegative() {
		return CartLine{}, errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is negative", unitPrice.String()),
		)
	}

	return CartLine{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  clampQuantity(quantity),
	}, nil
}

// ItemID returns the catalog identifier of the item.
func (l CartLine) ItemID() int {
	return l.itemID
}

// Name returns the item name.
func (l CartLine) Name() string {
	return l.name
}

// UnitPrice returns the per-item price.
func (l CartLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the current quantity, always >= 0.
func (l CartLine) Quantity() int {
	return l.quantity
}

// AddQuantity returns a copy of the line with the quantity adjusted by the
// given change, clamped at zero. Decrementing an empty line stays at zero.
func (l CartLine) AddQuantity(change int) CartLine {
	l.quantity = clampQuantity(l.quantity + change)
	return l
}

// LineTotal returns unitPrice multiplied by quantity.
func (l CartLine) LineTotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func clampQuantity(quantity int) int {
	if quantity < 0 {
		return 0
	}
	return quantity
}

// Cart is an ordered collection of cart lines. Lines with zero quantity are
// kept (the customer may increment them again) but ignored by pricing.
type Cart struct {
	lines []CartLine
}

// NewCart creates a cart from the given lines.
func NewCart(lines []CartLine) Cart {
	return Cart{lines: lines}
}

// Lines returns the cart lines in order.
func (c Cart) Lines() []CartLine {
	return c.lines
}

// OrderedLines returns only the lines with a positive quantity, in order.
// These are the lines that participate in pricing and order creation.
func (c Cart) OrderedLines() []CartLine {
	ordered := make([]CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		if line.quantity > 0 {
			ordered = append(ordered, line)
		}
	}
	return ordered
}

// HasItems reports whether any line has a positive quantity. An empty cart is
// a submission error and must be rejected before pricing is invoked.
func (c Cart) HasItems() bool {
	for _, line := range c.lines {
		if line.quantity > 0 {
			return true
		}
	}
	return false
}

// subtotal sums unitPrice x quantity over lines with positive quantity,
// before any discount.
func (c Cart) subtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		if line.quantity > 0 {
			total = total.Add(line.LineTotal())
		}
	}
	return total
}
