package voucher

import (
	"fmt"

	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountKind selects which voucher value drives the discount formula.
type DiscountKind int

const (
	// UnknownDiscount is the zero value and is never valid.
	UnknownDiscount DiscountKind = iota
	// Percentage takes a percentage of the order total.
	Percentage
	// FixedAmount subtracts a fixed monetary amount.
	FixedAmount
)

func (k DiscountKind) String() string {
	switch k {
	case Percentage:
		return "Percentage"
	case FixedAmount:
		return "FixedAmount"
	default:
		return "Unknown"
	}
}

// Validate rejects UnknownDiscount and out-of-range values read from storage or requests.
func (k DiscountKind) Validate() error {
	if k != Percentage && k != FixedAmount {
		return errs.NewValueIsInvalidErrorWithCause("discount kind", fmt.Errorf("%d is not a valid discount kind", k))
	}
	return nil
}

// ParseDiscountKind maps the String form back to a DiscountKind.
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch s {
	case "Percentage":
		return Percentage, nil
	case "FixedAmount":
		return FixedAmount, nil
	default:
		return UnknownDiscount, errs.NewValueIsInvalidErrorWithCause("discount kind", fmt.Errorf("%q is not a valid discount kind", s))
	}
}

// DiscountPolicy computes the discount for a pre-discount order total.
// Implementations are pure; clamping the resulting total is the caller's job.
type DiscountPolicy interface {
	Discount(total decimal.Decimal) decimal.Decimal
}

// PercentageDiscount yields total × Percentage / 100.
type PercentageDiscount struct {
	Percentage decimal.Decimal
}

func (p PercentageDiscount) Discount(total decimal.Decimal) decimal.Decimal {
	return total.Mul(p.Percentage).Div(hundred)
}

// FixedAmountDiscount yields Amount regardless of the total, even when it exceeds it.
type FixedAmountDiscount struct {
	Amount decimal.Decimal
}

func (f FixedAmountDiscount) Discount(_ decimal.Decimal) decimal.Decimal {
	return f.Amount
}

// noDiscount is used when the value selected by the kind is absent.
type noDiscount struct{}

func (noDiscount) Discount(_ decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}
