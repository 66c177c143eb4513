package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// RemoveOrderItemCommandHandler removes a product line from a stored order.
// Removing a product the order does not have fails with errs.ErrDomainRule.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{uowFactory: uowFactory}
}

func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RemoveItem(lineOf(o, cmd.ProductID()))
	})
}
