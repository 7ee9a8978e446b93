package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"tastyfood/internal/pkg/errs"
)

// orderNumberPrefix is the fixed prefix of every order number.
const orderNumberPrefix = "FD"

// ErrOrderNumberIsNotConstructed indicates an OrderNumber was not created
// through one of the constructor functions.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString",
)

// OrderNumber is the external identity of an order, in the form "FD0001".
// It is assigned once at creation, is unique, and never changes afterwards.
// The zero value is invalid; construct through NewOrderNumber or
// OrderNumberFromString.
type OrderNumber struct {
	sequence int
}

// NewOrderNumber creates an order number from a positive sequence value.
func NewOrderNumber(sequence int) (OrderNumber, error) {
	if sequence <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	return OrderNumber{sequence: sequence}, nil
}

// FirstOrderNumber returns the first order number in the sequence, "FD0001".
func FirstOrderNumber() OrderNumber {
	return OrderNumber{sequence: 1}
}

// OrderNumberFromString parses an order number such as "FD0042".
// The numeric part must be a positive integer after the "FD" prefix.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !strings.HasPrefix(s, orderNumberPrefix) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not start with %q", s, orderNumberPrefix),
		)
	}

	sequence, err := strconv.Atoi(s[len(orderNumberPrefix):])
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}

	return NewOrderNumber(sequence)
}

// Next returns the order number following this one in the sequence.
func (n OrderNumber) Next() OrderNumber {
	return OrderNumber{sequence: n.sequence + 1}
}

// Sequence returns the numeric part of the order number.
func (n OrderNumber) Sequence() int {
	return n.sequence
}

// String renders the order number in its canonical "FD%04d" form.
// Sequences beyond 9999 widen naturally, e.g. "FD10000".
func (n OrderNumber) String() string {
	return fmt.Sprintf("%s%04d", orderNumberPrefix, n.sequence)
}

// IsEqual reports whether two order numbers are the same.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.sequence == other.sequence
}

// Validate returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	if n.sequence <= 0 {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
