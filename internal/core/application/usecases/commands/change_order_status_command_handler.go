package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a lifecycle transition to a stored order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the status the order ends up in.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var status order.Status
	err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		switch cmd.Transition() {
		case TransitionDraft:
			o.MakeDraft()
		case TransitionStart:
			o.Start()
		case TransitionFinalize:
			o.Finalize()
		case TransitionDeliver:
			o.Deliver()
		case TransitionCancel:
			o.Cancel()
		}
		status = o.Status()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return status, nil
}
