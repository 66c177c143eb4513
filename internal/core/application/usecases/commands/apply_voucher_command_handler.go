package commands

import (
	"context"
	"fmt"
	"time"

	"sales/internal/core/domain/model/voucher"
)

// ApplyVoucherCommandHandler looks a voucher up by code and applies it to an
// order. An ineligible voucher is not an error: the result lists the reasons
// and the order is not stored.
type ApplyVoucherCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewApplyVoucherCommandHandler takes the clock used to check voucher
// expiration; pass time.Now outside tests.
func NewApplyVoucherCommandHandler(uowFactory UoWFactory, now func() time.Time) ApplyVoucherCommandHandler {
	return ApplyVoucherCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h *ApplyVoucherCommandHandler) Handle(ctx context.Context, cmd ApplyVoucherCommand) (voucher.EligibilityResult, error) {
	if err := cmd.Validate(); err != nil {
		return voucher.EligibilityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return voucher.EligibilityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VoucherRepository().GetByCode(ctx, cmd.Code())
	if err != nil {
		return voucher.EligibilityResult{}, fmt.Errorf("load voucher %q: %w", cmd.Code(), err)
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return voucher.EligibilityResult{}, fmt.Errorf("load order %s: %w", cmd.OrderID(), err)
	}

	result, err := o.ApplyVoucher(v, h.now())
	if err != nil {
		return voucher.EligibilityResult{}, err
	}
	if !result.IsValid() {
		return result, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return voucher.EligibilityResult{}, fmt.Errorf("store order %s: %w", cmd.OrderID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return voucher.EligibilityResult{}, err
	}

	return result, nil
}
