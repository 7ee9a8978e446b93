package order

import (
	"fmt"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/pricing"
	"tastyfood/internal/pkg/errs"
)

// Line is an immutable snapshot of one ordered menu item. The name and unit
// price are copied from the menu at checkout, so later menu edits never
// rewrite the history of a placed order.
type Line struct {
	itemID    int
	name      string
	unitPrice kernel.Money
	quantity  int
}

// NewLine creates an order line snapshot. Unlike a cart line, an order line
// must have a positive quantity: zero-quantity cart entries are dropped
// before the order is placed.
func NewLine(itemID int, name string, unitPrice kernel.Money, quantity int) (Line, error) {
	if itemID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", itemID))
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("item name")
	}
	if unitPrice.IsNegative() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice.String()))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

// LinesFromCart snapshots every positive-quantity cart line into order lines.
func LinesFromCart(cart pricing.Cart) ([]Line, error) {
	ordered := cart.OrderedLines()
	lines := make([]Line, 0, len(ordered))
	for _, cl := range ordered {
		line, err := NewLine(cl.ItemID(), cl.Name(), cl.UnitPrice(), cl.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ItemID returns the menu item identifier the line was snapshotted from.
func (l Line) ItemID() int {
	return l.itemID
}

// Name returns the item name as it read at checkout.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the per-item price captured at checkout.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the ordered quantity, always positive.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns unit price multiplied by quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}
