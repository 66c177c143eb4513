package catalog

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"
)

const (
	nameMinLength        = 3
	nameMaxLength        = 255
	descriptionMaxLength = 10000
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups products of the catalog.
type Category struct {
	id          kernel.UUID
	name        string
	description string
	active      bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewCategory creates a category. Every invalid field is reported.
func NewCategory(name, description string, active bool) (*Category, error) {
	c := &Category{
		id:        kernel.NewUUID(),
		active:    active,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) ID() kernel.UUID { return c.id }
func (c *Category) Name() string { return c.name }
func (c *Category) Description() string { return c.description }
func (c *Category) IsActive() bool { return c.active }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Update renames the category. A nil description keeps the current one.
// Nothing changes when the new values are invalid.
func (c *Category) Update(name string, description *string) error {
	next := *c
	if err := next.setName(name); err != nil {
		return err
	}
	if description != nil {
		if err := next.setDescription(*description); err != nil {
			return err
		}
	}

	*c = next
	return nil
}

func (c *Category) Activate() { c.active = true }
func (c *Category) Deactivate() { c.active = false }

func (c *Category) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Category) setDescription(description string) error {
	if err := validation.MaxLength(description, descriptionMaxLength, "Description"); err != nil {
		return err
	}
	c.description = description
	return nil
}

// validateName stops at the first failing check, so a blank name reports
// only that it is blank.
func validateName(name string) error {
	if err := validation.NotNullOrBlank(name, "Name"); err != nil {
		return err
	}
	if err := validation.MinLength(name, nameMinLength, "Name"); err != nil {
		return err
	}
	return validation.MaxLength(name, nameMaxLength, "Name")
}
