// Package guard provides ConstructorGuard, a marker embedded in entities,
// value objects and commands to tell a value built by its constructor apart
// from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was produced by its
// designated constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrVoucherIsNotConstructed = errors.New("Voucher must be created via NewVoucher")
//
//	type Voucher struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (v *Voucher) Validate() error {
//	    return v.guard.Validate(ErrVoucherIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
