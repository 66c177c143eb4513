package commands

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// CreateDraftOrderCommandHandler persists a new empty order in Draft status.
type CreateDraftOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateDraftOrderCommandHandler(uowFactory OrderUoWFactory) CreateDraftOrderCommandHandler {
	return CreateDraftOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order and returns its identifier.
func (h *CreateDraftOrderCommandHandler) Handle(ctx context.Context, cmd CreateDraftOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	o, err := order.NewDraftOrder(cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
