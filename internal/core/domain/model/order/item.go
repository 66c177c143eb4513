package order

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Item is one product line of an order: a quantity of a product at a unit
// price captured when the line was created.
//
// Quantity and unit price are not range checked.
type Item struct {
	id          kernel.UUID
	orderID     *kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	createdAt   time.Time
}

// NewItem creates an item that does not belong to any order yet. It becomes
// owned by an order once passed to AddItem or ChangeItem.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice decimal.Decimal) *Item {
	return &Item{
		id:          kernel.NewUUID(),
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		createdAt:   time.Now(),
	}
}

// RestoreItem rebuilds an item already attached to orderID.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	createdAt time.Time,
) (*Item, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	return &Item{
		id:          id,
		orderID:     &orderID,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		createdAt:   createdAt,
	}, nil
}

func (i *Item) ID() kernel.UUID { return i.id }

// OrderID is nil until the item is attached to an order.
func (i *Item) OrderID() *kernel.UUID {
	if i.orderID == nil {
		return nil
	}
	id := *i.orderID
	return &id
}

func (i *Item) ProductID() kernel.UUID { return i.productID }

func (i *Item) ProductName() string { return i.productName }

func (i *Item) Quantity() int { return i.quantity }

func (i *Item) UnitPrice() decimal.Decimal { return i.unitPrice }

func (i *Item) CreatedAt() time.Time { return i.createdAt }

// Subtotal returns quantity × unit price.
func (i *Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// IsValid reports whether the order should accept the item. Every
// constructed item is valid; nil is not.
func (i *Item) IsValid() bool {
	return i != nil
}

func (i *Item) associateToOrder(orderID kernel.UUID) {
	i.orderID = &orderID
}

func (i *Item) addUnits(delta int) {
	i.quantity += delta
}

func (i *Item) setUnits(quantity int) {
	i.quantity = quantity
}
