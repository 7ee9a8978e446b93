package pricing

import (
	"fmt"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ServiceChargeRate is the fixed 8.25% surcharge applied to the (possibly
// discounted) subtotal.
var ServiceChargeRate = decimal.NewFromFloat(0.0825)

// RewardDiscountMultiplier implements the flat 10% reward discount: the
// subtotal is multiplied by 0.90 before the service charge and percentage tip
// are derived from it, so the discount is never applied twice.
var RewardDiscountMultiplier = decimal.NewFromFloat(0.90)

// ErrEmptyCart is returned when pricing is requested for a cart without any
// positive-quantity line. An empty cart is a submission error, not a
// zero-total order.
var ErrEmptyCart = errs.NewValueIsInvalidErrorWithCause(
	"cart",
	fmt.Errorf("no items with positive quantity"),
)

// Breakdown is the deterministic monetary result of pricing a cart. It is
// derived data: it exists only as part of the order it belongs to and is
// never persisted independently.
//
// Invariant: grandTotal = subtotal + serviceCharge + tip, exactly. Amounts
// stay unrounded internally; rounding happens at display time only.
type Breakdown struct {
	subtotal      kernel.Money
	serviceCharge kernel.Money
	tip           kernel.Money
	grandTotal    kernel.Money
}

// Compute prices a cart. The reward flag applies the 10% discount to the
// subtotal before anything else; the service charge and a percentage tip are
// computed on the discounted subtotal; a custom tip is used verbatim.
//
// Returns ErrEmptyCart when no line has a positive quantity.
func Compute(cart Cart, rewardApplied bool, tip TipSelection) (Breakdown, error) {
	if !cart.HasItems() {
		return Breakdown{}, ErrEmptyCart
	}

	subtotal := cart.subtotal()
	if rewardApplied {
		subtotal = subtotal.Mul(RewardDiscountMultiplier)
	}

	serviceCharge := subtotal.Mul(ServiceChargeRate)
	tipAmount := tip.Amount(subtotal)

	return Breakdown{
		subtotal:      subtotal,
		serviceCharge: serviceCharge,
		tip:           tipAmount,
		grandTotal:    subtotal.Add(serviceCharge).Add(tipAmount),
	}, nil
}

// RestoreBreakdown reconstructs a breakdown from persisted amounts, checking
// the grand total identity so corrupted rows cannot round-trip into the
// domain.
func RestoreBreakdown(subtotal, serviceCharge, tip, grandTotal kernel.Money) (Breakdown, error) {
	if !subtotal.Add(serviceCharge).Add(tip).IsEqual(grandTotal) {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"pricing breakdown",
			fmt.Errorf("grand total %s does not equal subtotal %s + service charge %s + tip %s",
				grandTotal.String(), subtotal.String(), serviceCharge.String(), tip.String()),
		)
	}

	return Breakdown{
		subtotal:      subtotal,
		serviceCharge: serviceCharge,
		tip:           tip,
		grandTotal:    grandTotal,
	}, nil
}

// Subtotal returns the (possibly discounted) item subtotal.
func (b Breakdown) Subtotal() kernel.Money {
	return b.subtotal
}

// ServiceCharge returns the 8.25% surcharge amount.
func (b Breakdown) ServiceCharge() kernel.Money {
	return b.serviceCharge
}

// Tip returns the resolved tip amount.
func (b Breakdown) Tip() kernel.Money {
	return b.tip
}

// GrandTotal returns the exact sum of subtotal, service charge and tip.
func (b Breakdown) GrandTotal() kernel.Money {
	return b.grandTotal
}
