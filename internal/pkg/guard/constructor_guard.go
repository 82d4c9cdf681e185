// Package guard provides the constructor guard used by value objects, commands
// and queries to ensure they are created through their designated constructor
// functions rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an object that was not constructed
// through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor function or created as a zero value. Embedding a guard in a
// domain object and checking it in Validate keeps invariants intact: a
// zero-value object always fails validation.
//
// Example usage:
//
//	var ErrTripNotConstructed = errors.New("Trip must be created via NewTrip")
//
//	type Trip struct {
//	    id    kernel.TripID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrip(id kernel.TripID) Trip {
//	    return Trip{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (t Trip) Validate() error {
//	    return t.guard.Validate(ErrTripNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
