package voucherrepo

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/voucher"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoucherRepository implements ports.VoucherRepository using GORM.
type GormVoucherRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormVoucherRepository(db *gorm.DB, tracker aggregateTracker) *GormVoucherRepository {
	return &GormVoucherRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new voucher.
func (r *GormVoucherRepository) Add(ctx context.Context, v *voucher.Voucher) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := FromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

// GetByCode retrieves a voucher by its exact code.
func (r *GormVoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	var dto VoucherDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voucher", code)
		}
		return nil, err
	}

	return ToDomain(dto)
}
