package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// ChangeOrderItemUnitsCommandHandler sets the quantity of a product line of
// a stored order.
type ChangeOrderItemUnitsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderItemUnitsCommandHandler(uowFactory OrderUoWFactory) ChangeOrderItemUnitsCommandHandler {
	return ChangeOrderItemUnitsCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeOrderItemUnitsCommandHandler) Handle(ctx context.Context, cmd ChangeOrderItemUnitsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ChangeUnits(lineOf(o, cmd.ProductID()), cmd.Quantity())
	})
}
