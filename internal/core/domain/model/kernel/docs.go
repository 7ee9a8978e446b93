// Package kernel provides the shared value objects of the ordering domain:
// identifiers, money, order numbers, clock times, delivery addresses and
// delivery ETAs.
//
// All types in this package are immutable value objects. They validate on
// construction and cannot be mutated afterwards, so any instance obtained from
// a constructor is guaranteed to be in a valid state. Zero values are invalid
// and are rejected by Validate.
package kernel
