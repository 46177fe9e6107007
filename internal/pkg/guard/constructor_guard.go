// Package guard provides a defensive construction check for value objects,
// entities, commands, and queries. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable, so code paths can refuse objects
// that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing struct was built through a
// designated constructor. The zero value fails validation.
//
// Example usage:
//
//	var ErrPlanNotConstructed = errors.New("Plan must be created via NewPlan")
//
//	type Plan struct {
//	    capacity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewPlan(capacity int) Plan {
//	    return Plan{capacity: capacity, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p Plan) Validate() error {
//	    return p.guard.Validate(ErrPlanNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built via its constructor.
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
