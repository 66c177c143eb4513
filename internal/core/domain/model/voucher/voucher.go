package voucher

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"

	"github.com/shopspring/decimal"
)

// ErrVoucherIsNotConstructed is returned when using a Voucher that was not
// built by NewVoucher or RestoreVoucher.
var ErrVoucherIsNotConstructed = errors.New("Voucher must be created via NewVoucher constructor")

// Voucher is an eligibility-gated discount descriptor.
//
// Exactly one of percentage and fixedAmount is meaningful, selected by kind.
// The other stays nil.
type Voucher struct {
	id          kernel.UUID
	code        string
	kind        DiscountKind
	percentage  *decimal.Decimal
	fixedAmount *decimal.Decimal
	remaining   int
	active      bool
	used        bool
	expiresAt   time.Time
	createdAt   time.Time
	usedAt      *time.Time

	guard guard.ConstructorGuard
}

// State is the full persisted shape of a voucher, used by RestoreVoucher.
type State struct {
	ID          kernel.UUID
	Code        string
	Kind        DiscountKind
	Percentage  *decimal.Decimal
	FixedAmount *decimal.Decimal
	Remaining   int
	Active      bool
	Used        bool
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UsedAt      *time.Time
}

// NewVoucher creates a voucher whose discount value is interpreted according
// to kind: a percentage for Percentage, a monetary amount for FixedAmount.
//
//	v, err := voucher.NewVoucher("PROMO-15", voucher.FixedAmount, decimal.NewFromInt(15),
//	    1, time.Now().AddDate(0, 0, 15), true, false)
func NewVoucher(
	code string,
	kind DiscountKind,
	value decimal.Decimal,
	remaining int,
	expiresAt time.Time,
	active bool,
	used bool,
) (*Voucher, error) {
	v := &Voucher{
		id:        kernel.NewUUID(),
		remaining: remaining,
		active:    active,
		used:      used,
		expiresAt: expiresAt,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setCode(code),
		v.setDiscount(kind, value),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVoucher rebuilds a voucher from persisted state. A missing value for
// the selected kind is accepted and results in a zero discount.
func RestoreVoucher(s State) (*Voucher, error) {
	v := &Voucher{
		percentage:  s.Percentage,
		fixedAmount: s.FixedAmount,
		remaining:   s.Remaining,
		active:      s.Active,
		used:        s.Used,
		expiresAt:   s.ExpiresAt,
		createdAt:   s.CreatedAt,
		usedAt:      s.UsedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.ID.Validate(),
		v.setCode(s.Code),
		s.Kind.Validate(),
	); err != nil {
		return nil, err
	}

	v.id = s.ID
	v.kind = s.Kind
	return v, nil
}

// Validate ensures the voucher was created through a constructor.
func (v *Voucher) Validate() error {
	if v == nil {
		return ErrVoucherIsNotConstructed
	}
	return v.guard.Validate(ErrVoucherIsNotConstructed)
}

func (v *Voucher) ID() kernel.UUID { return v.id }

func (v *Voucher) Code() string { return v.code }

func (v *Voucher) Kind() DiscountKind { return v.kind }

// Percentage is set only for Percentage vouchers.
func (v *Voucher) Percentage() *decimal.Decimal { return copyDecimal(v.percentage) }

// FixedAmount is set only for FixedAmount vouchers.
func (v *Voucher) FixedAmount() *decimal.Decimal { return copyDecimal(v.fixedAmount) }

func (v *Voucher) Remaining() int { return v.remaining }

func (v *Voucher) IsActive() bool { return v.active }

func (v *Voucher) IsUsed() bool { return v.used }

func (v *Voucher) ExpiresAt() time.Time { return v.expiresAt }

func (v *Voucher) CreatedAt() time.Time { return v.createdAt }

// UsedAt is the date of use recorded by the voucher issuer, if any.
func (v *Voucher) UsedAt() *time.Time {
	if v.usedAt == nil {
		return nil
	}
	t := *v.usedAt
	return &t
}

// Policy returns the discount strategy selected by the voucher kind.
func (v *Voucher) Policy() DiscountPolicy {
	if v.kind == Percentage {
		if v.percentage == nil {
			return noDiscount{}
		}
		return PercentageDiscount{Percentage: *v.percentage}
	}

	if v.fixedAmount == nil {
		return noDiscount{}
	}
	return FixedAmountDiscount{Amount: *v.fixedAmount}
}

// CheckEligibility evaluates every rule against now and collects all failures.
// Rules are not short-circuited.
func (v *Voucher) CheckEligibility(now time.Time) EligibilityResult {
	var reasons []string

	if v.expiresAt.Before(now) {
		reasons = append(reasons, ReasonExpired)
	}
	if !v.active {
		reasons = append(reasons, ReasonInactive)
	}
	if v.used {
		reasons = append(reasons, ReasonAlreadyUsed)
	}
	if v.remaining <= 0 {
		reasons = append(reasons, ReasonNotAvailable)
	}

	return EligibilityResult{reasons: reasons}
}

func (v *Voucher) setCode(code string) error {
	if err := validation.NotNullOrBlank(code, "Code"); err != nil {
		return err
	}
	v.code = code
	return nil
}

func (v *Voucher) setDiscount(kind DiscountKind, value decimal.Decimal) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	v.kind = kind
	switch kind {
	case Percentage:
		v.percentage = &value
	case FixedAmount:
		v.fixedAmount = &value
	case UnknownDiscount:
	}
	return nil
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
