package customer

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"
)

const (
	nameMinLength = 3
	nameMaxLength = 255
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the buyer referenced by an order.
type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	document  string
	active    bool
	createdAt time.Time
	address   *Address

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer. The document keeps only its digits, so
// "123.456.789-09" is stored as "12345678909".
func NewCustomer(name, email, document string, active bool) (*Customer, error) {
	c := &Customer{
		id:        kernel.NewUUID(),
		active:    active,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setDocument(document),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) Name() string { return c.name }
func (c *Customer) Email() string { return c.email }
func (c *Customer) Document() string { return c.document }
func (c *Customer) IsActive() bool { return c.active }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Address is nil until one is assigned.
func (c *Customer) Address() *Address { return c.address }

// AssignAddress replaces the customer's address.
func (c *Customer) AssignAddress(address *Address) error {
	if err := validation.NotNull(address, "Address"); err != nil {
		return err
	}
	if !address.CustomerID().IsEqual(c.id) {
		return errs.NewDomainRuleError("the address belongs to another customer")
	}
	c.address = address
	return nil
}

func (c *Customer) Activate() { c.active = true }
func (c *Customer) Deactivate() { c.active = false }

func (c *Customer) setName(name string) error {
	if err := validation.NotNullOrBlank(name, "Name"); err != nil {
		return err
	}
	if err := validation.MinLength(name, nameMinLength, "Name"); err != nil {
		return err
	}
	if err := validation.MaxLength(name, nameMaxLength, "Name"); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if err := validation.NotNullOrBlank(email, "Email"); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValidationError("Email", "Email should be a valid address.")
	}
	c.email = addr.Address
	return nil
}

func (c *Customer) setDocument(document string) error {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, document)

	if err := validation.NotNullOrBlank(digits, "Document"); err != nil {
		return err
	}
	c.document = digits
	return nil
}
