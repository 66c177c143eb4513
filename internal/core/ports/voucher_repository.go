package ports

import (
	"context"

	"sales/internal/core/domain/model/voucher"
)

// VoucherRepository gives read access to vouchers managed by the voucher
// issuer. Add exists for seeding and tests.
type VoucherRepository interface {
	Add(ctx context.Context, v *voucher.Voucher) error

	// GetByCode returns an errs.ObjectNotFoundError when no voucher has code.
	GetByCode(ctx context.Context, code string) (*voucher.Voucher, error)
}
