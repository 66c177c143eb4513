package voucher

import (
	"errors"
	"slices"

	"sales/internal/pkg/errs"
)

// Reasons reported by CheckEligibility, in evaluation order.
const (
	ReasonExpired      = "This voucher is expired."
	ReasonInactive     = "This voucher is no longer valid."
	ReasonAlreadyUsed  = "This voucher has already been used."
	ReasonNotAvailable = "This voucher is no longer available."
)

// EligibilityResult is the outcome of a business-rule check. An ineligible
// voucher is an expected outcome, not an error, so the result carries the
// failing reasons instead of failing the call.
type EligibilityResult struct {
	reasons []string
}

// Eligible returns a result with no failing rules.
func Eligible() EligibilityResult {
	return EligibilityResult{}
}

// Ineligible returns a result carrying the given reasons.
func Ineligible(reasons ...string) EligibilityResult {
	return EligibilityResult{reasons: slices.Clone(reasons)}
}

// IsValid reports whether every rule passed.
func (r EligibilityResult) IsValid() bool {
	return len(r.reasons) == 0
}

// Reasons returns a copy of the failing reasons.
func (r EligibilityResult) Reasons() []string {
	return slices.Clone(r.reasons)
}

// Err joins the reasons into a single error for callers that prefer one.
// It returns nil for a valid result.
func (r EligibilityResult) Err() error {
	if r.IsValid() {
		return nil
	}

	joined := make([]error, 0, len(r.reasons))
	for _, reason := range r.reasons {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause("voucher", errors.New(reason)))
	}
	return errors.Join(joined...)
}
