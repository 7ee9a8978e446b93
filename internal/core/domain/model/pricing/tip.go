package pricing

import (
	"fmt"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TipPercentages is the fixed set of selectable tip rates.
func TipPercentages() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromFloat(0.15),
		decimal.NewFromFloat(0.18),
		decimal.NewFromFloat(0.20),
		decimal.NewFromFloat(0.25),
	}
}

// TipSelection is the customer's tip choice: either a percentage from the
// fixed set or an explicit custom amount. The two are mutually exclusive by
// construction; a custom amount, when present, always wins over a percentage.
type TipSelection struct {
	percentage decimal.Decimal
	custom     *kernel.Money
}

// DefaultTipSelection returns the default 20% percentage tip.
func DefaultTipSelection() TipSelection {
	return TipSelection{percentage: decimal.NewFromFloat(0.20)}
}

// NewPercentageTip creates a percentage tip selection. The rate must be one
// of the fixed set returned by TipPercentages. Selecting a percentage clears
// any custom amount by construction.
func NewPercentageTip(rate decimal.Decimal) (TipSelection, error) {
	for _, allowed := range TipPercentages() {
		if rate.Equal(allowed) {
			return TipSelection{percentage: rate}, nil
		}
	}
	return TipSelection{}, errs.NewValueIsInvalidErrorWithCause(
		"tip percentage",
		fmt.Errorf("%s is not a selectable tip rate", rate.String()),
	)
}

// NewCustomTip creates a custom-amount tip from raw user input. The input
// must parse as a non-negative number; anything else is rejected at this
// boundary and never silently coerced to zero.
func NewCustomTip(raw string) (TipSelection, error) {
	amount, err := kernel.MoneyFromString(raw)
	if err != nil {
		return TipSelection{}, errs.NewValueIsInvalidErrorWithCause(
			"custom tip",
			fmt.Errorf("%q is not a number", raw),
		)
	}
	if amount.IsNegative() {
		return TipSelection{}, errs.NewValueIsInvalidErrorWithCause(
			"custom tip",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return TipSelection{custom: &amount}, nil
}

// IsCustom reports whether an explicit custom amount is selected.
func (t TipSelection) IsCustom() bool {
	return t.custom != nil
}

// Amount resolves the tip against the given (already discounted) subtotal:
// the custom amount verbatim when present, otherwise subtotal x percentage.
func (t TipSelection) Amount(subtotal kernel.Money) kernel.Money {
	if t.custom != nil {
		return *t.custom
	}
	return subtotal.Mul(t.percentage)
}
