package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"

	"github.com/shopspring/decimal"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand adds a product line to an order. Adding a product the
// order already has increases that line's quantity.
//
// Quantity and unit price are passed to the order unchecked.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setProductName(productName),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID { return c.orderID }

func (c AddOrderItemCommand) ProductID() kernel.UUID { return c.productID }

func (c AddOrderItemCommand) ProductName() string { return c.productName }

func (c AddOrderItemCommand) Quantity() int { return c.quantity }

func (c AddOrderItemCommand) UnitPrice() decimal.Decimal { return c.unitPrice }

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setProductName(productName string) error {
	if err := validation.NotNullOrBlank(productName, "ProductName"); err != nil {
		return err
	}
	c.productName = productName
	return nil
}
