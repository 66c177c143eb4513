package customer

import (
	"sales/internal/core/domain/model/kernel"
)

// Address is a customer's postal address. Only the customer reference is
// validated.
type Address struct {
	id         kernel.UUID
	street     string
	zipCode    string
	city       string
	state      string
	customerID kernel.UUID
}

func NewAddress(street, zipCode, city, state string, customerID kernel.UUID) (*Address, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Address{
		id:         kernel.NewUUID(),
		street:     street,
		zipCode:    zipCode,
		city:       city,
		state:      state,
		customerID: customerID,
	}, nil
}

func (a *Address) ID() kernel.UUID { return a.id }
func (a *Address) Street() string { return a.street }
func (a *Address) ZipCode() string { return a.zipCode }
func (a *Address) City() string { return a.city }
func (a *Address) State() string { return a.state }
func (a *Address) CustomerID() kernel.UUID { return a.customerID }
