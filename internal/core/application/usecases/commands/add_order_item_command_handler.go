package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler adds a product line to a stored order.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{uowFactory: uowFactory}
}

func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		o.AddItem(order.NewItem(cmd.ProductID(), cmd.ProductName(), cmd.Quantity(), cmd.UnitPrice()))
		return nil
	})
}
