package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrChangeOrderItemUnitsCommandIsNotConstructed = errors.New(
	"ChangeOrderItemUnitsCommand must be created via NewChangeOrderItemUnitsCommand constructor",
)

// ChangeOrderItemUnitsCommand sets the quantity of a product line.
type ChangeOrderItemUnitsCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewChangeOrderItemUnitsCommand(orderID, productID kernel.UUID, quantity int) (ChangeOrderItemUnitsCommand, error) {
	if err := errors.Join(orderID.Validate(), productID.Validate()); err != nil {
		return ChangeOrderItemUnitsCommand{}, err
	}

	return ChangeOrderItemUnitsCommand{
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderItemUnitsCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderItemUnitsCommandIsNotConstructed)
}

func (c ChangeOrderItemUnitsCommand) OrderID() kernel.UUID { return c.orderID }

func (c ChangeOrderItemUnitsCommand) ProductID() kernel.UUID { return c.productID }

func (c ChangeOrderItemUnitsCommand) Quantity() int { return c.quantity }
