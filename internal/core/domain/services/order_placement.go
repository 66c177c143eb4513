package services

import (
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/customer"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

var (
	ErrCustomerIsInactive   = errs.NewDomainRuleError("the customer is inactive")
	ErrProductIsUnavailable = errs.NewDomainRuleError("the product is not available")
)

// OrderPlacement opens drafts and adds catalog products to them.
//
//	placement := services.NewOrderPlacement()
//	draft, err := placement.OpenDraft(c)
//	...
//	item, err := placement.AddProduct(draft, notebook, 3)
type OrderPlacement struct{}

func NewOrderPlacement() OrderPlacement {
	return OrderPlacement{}
}

// OpenDraft creates a draft order for an active customer.
func (OrderPlacement) OpenDraft(c *customer.Customer) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.IsActive() {
		return nil, ErrCustomerIsInactive
	}

	return order.NewDraftOrder(c.ID())
}

// AddProduct adds quantity units of product to o. The line copies the
// product's current name and price, so later catalog changes do not reach
// existing orders. It returns the line as it was passed to the order; when
// the product already had a line the units are merged into that line instead.
func (OrderPlacement) AddProduct(o *order.Order, product *catalog.Product, quantity int) (*order.Item, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if !product.IsActive() {
		return nil, ErrProductIsUnavailable
	}

	item := order.NewItem(product.ID(), product.Name(), quantity, product.Price())
	o.AddItem(item)

	return item, nil
}
