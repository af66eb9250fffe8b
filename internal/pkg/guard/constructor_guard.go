// Package guard provides the constructor guard pattern used by value objects
// and entities to detect zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard in a struct makes the zero value detectable:
// a struct built without its constructor carries a zero guard and fails
// Validate.
//
// Example:
//
//	type Points struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPoints(amount int) (Points, error) {
//	    if amount < 0 {
//	        return Points{}, errors.New("amount cannot be negative")
//	    }
//	    return Points{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Points) Validate() error {
//	    return p.guard.Validate(ErrPointsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
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
