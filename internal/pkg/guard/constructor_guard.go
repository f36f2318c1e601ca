// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value, so invariants established by the constructor cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which distinguishes properly constructed
// objects from accidental zero-value instances.
//
// Example:
//
//	type ConfirmItemsCommand struct {
//	    orderKey kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewConfirmItemsCommand(orderKey kernel.UUID) (ConfirmItemsCommand, error) {
//	    ...
//	    return ConfirmItemsCommand{orderKey: orderKey, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ConfirmItemsCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmItemsCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
