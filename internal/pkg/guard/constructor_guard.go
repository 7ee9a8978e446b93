// Package guard implements the constructor-guard pattern used across the
// domain and application layers. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so commands, queries and value objects can
// insist on being built through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// provided and the object was not built through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The internal flag is only set by NewConstructorGuard, so any struct embedding
// a guard that bypassed its constructor will fail validation.
//
// Example:
//
//	type CompleteOrderCommand struct {
//	    orderNo string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCompleteOrderCommand(orderNo string) (CompleteOrderCommand, error) {
//	    ...
//	    return CompleteOrderCommand{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CompleteOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
