package commands

import (
	"context"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// mutateOrder loads an order locked for update, applies fn and stores the
// result in one transaction. Nothing is stored when fn fails.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	fn func(o *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", orderID, err)
	}

	if err = fn(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return fmt.Errorf("store order %s: %w", orderID, err)
	}

	return uow.Commit(ctx)
}

// lineOf returns the order's item for productID, or a detached item carrying
// only the product so the order reports that it does not belong to it.
func lineOf(o *order.Order, productID kernel.UUID) *order.Item {
	for _, item := range o.Items() {
		if item.ProductID().IsEqual(productID) {
			return item
		}
	}
	return order.NewItem(productID, "", 0, decimal.Zero)
}
