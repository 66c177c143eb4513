// Package voucherrepo maps vouchers to the vouchers table.
package voucherrepo

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherDTO is the row of the vouchers table. Percentage and FixedAmount
// are NULL unless the kind selects them.
type VoucherDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Code        string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	Kind        int                 `gorm:"type:smallint;not null"`
	Percentage  decimal.NullDecimal `gorm:"type:numeric"`
	FixedAmount decimal.NullDecimal `gorm:"type:numeric"`
	Remaining   int                 `gorm:"not null"`
	Active      bool                `gorm:"not null"`
	Used        bool                `gorm:"not null"`
	ExpiresAt   time.Time           `gorm:"not null"`
	CreatedAt   time.Time           `gorm:"not null"`
	UsedAt      *time.Time
}

func (VoucherDTO) TableName() string {
	return "vouchers"
}

// FromDomain is exported for the order repository, which preloads the
// applied voucher together with the order.
func FromDomain(v *voucher.Voucher) VoucherDTO {
	return VoucherDTO{
		ID:          v.ID().Bytes(),
		Code:        v.Code(),
		Kind:        int(v.Kind()),
		Percentage:  nullDecimal(v.Percentage()),
		FixedAmount: nullDecimal(v.FixedAmount()),
		Remaining:   v.Remaining(),
		Active:      v.IsActive(),
		Used:        v.IsUsed(),
		ExpiresAt:   v.ExpiresAt(),
		CreatedAt:   v.CreatedAt(),
		UsedAt:      v.UsedAt(),
	}
}

// ToDomain rebuilds a voucher with RestoreVoucher.
func ToDomain(dto VoucherDTO) (*voucher.Voucher, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return voucher.RestoreVoucher(voucher.State{
		ID:          id,
		Code:        dto.Code,
		Kind:        voucher.DiscountKind(dto.Kind),
		Percentage:  decimalPtr(dto.Percentage),
		FixedAmount: decimalPtr(dto.FixedAmount),
		Remaining:   dto.Remaining,
		Active:      dto.Active,
		Used:        dto.Used,
		ExpiresAt:   dto.ExpiresAt,
		CreatedAt:   dto.CreatedAt,
		UsedAt:      dto.UsedAt,
	})
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
