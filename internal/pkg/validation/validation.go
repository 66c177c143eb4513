// Package validation holds stateless precondition checks shared by the
// entities of the sales domain. Each check returns nil or an
// *errs.ValidationError whose message names the field and the constraint.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"sales/internal/pkg/errs"
)

// NotNull fails when value is nil or a typed nil pointer, map, slice or interface.
func NotNull(value any, field string) error {
	if isNil(value) {
		return errs.NewValidationError(field, fmt.Sprintf("%s should not be null.", field))
	}
	return nil
}

// NotNullOrBlank fails when value is empty or contains only whitespace.
func NotNullOrBlank(value string, field string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValidationError(field, fmt.Sprintf("%s should not be empty or null.", field))
	}
	return nil
}

// MinLength fails when value has fewer than minLength characters.
func MinLength(value string, minLength int, field string) error {
	if utf8.RuneCountInString(value) < minLength {
		return errs.NewValidationError(field,
			fmt.Sprintf("%s should be at least %d characters.", field, minLength))
	}
	return nil
}

// MaxLength fails when value has more than maxLength characters.
func MaxLength(value string, maxLength int, field string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return errs.NewValidationError(field,
			fmt.Sprintf("%s should be less or equal %d characters long.", field, maxLength))
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
