package kernel

import (
	"tastyfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable monetary amount. Internal arithmetic stays unrounded;
// rounding to cents happens only at presentation time via StringFixed.
//
// The zero value is a valid zero amount, which keeps Money convenient to use
// inside pricing arithmetic.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromFloat creates a Money from a float64 amount. Intended for
// literals in tests and fixtures; parsed inputs should go through
// MoneyFromString.
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// MoneyFromString parses a decimal string such as "6.99" into Money.
// Returns a validation error when the input is not a number.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: amount}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount scaled by the given factor, unrounded.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying unrounded decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// StringFixed renders the amount rounded to two decimal places, e.g. "12.58".
// This is the only place rounding happens.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// String returns the unrounded decimal representation.
func (m Money) String() string {
	return m.amount.String()
}
