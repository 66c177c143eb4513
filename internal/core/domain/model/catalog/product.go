package catalog

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable catalog entry. Orders copy its id, name and price
// into an order.Item when a line is added.
type Product struct {
	id          kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	active      bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewProduct(categoryID kernel.UUID, name, description string, price decimal.Decimal, active bool) (*Product, error) {
	p := &Product{
		id:        kernel.NewUUID(),
		price:     price,
		active:    active,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setCategoryID(categoryID),
		p.setName(name),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) CategoryID() kernel.UUID { return p.categoryID }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) IsActive() bool { return p.active }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

func (p *Product) Activate() { p.active = true }
func (p *Product) Deactivate() { p.active = false }

// ChangeCategory moves the product to category.
func (p *Product) ChangeCategory(category *Category) error {
	if err := validation.NotNull(category, "Category"); err != nil {
		return err
	}
	if err := category.Validate(); err != nil {
		return err
	}
	p.categoryID = category.ID()
	return nil
}

// Update renames the product. Nil description or price keep the current
// values. Nothing changes when the new values are invalid.
func (p *Product) Update(name string, description *string, price *decimal.Decimal) error {
	next := *p
	if err := next.setName(name); err != nil {
		return err
	}
	if description != nil {
		if err := next.setDescription(*description); err != nil {
			return err
		}
	}
	if price != nil {
		next.price = *price
	}

	*p = next
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	if err := validation.MaxLength(description, descriptionMaxLength, "Description"); err != nil {
		return err
	}
	p.description = description
	return nil
}
