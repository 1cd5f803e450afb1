package catalog

import (
	"errors"

	"repuestos/internal/pkg/errs"
	"repuestos/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a read-only catalog reference: an identifier plus a display
// name. The order core treats it as an opaque foreign key and never mutates it.
type Customer struct {
	id   string
	name string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer reference.
func NewCustomer(id, name string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identifier.
func (c Customer) ID() string {
	return c.id
}

// Name returns the customer display name.
func (c Customer) Name() string {
	return c.name
}

func (c *Customer) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}
