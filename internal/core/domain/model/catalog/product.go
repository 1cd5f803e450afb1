package catalog

import (
	"errors"
	"fmt"

	"repuestos/internal/pkg/errs"
	"repuestos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a read-only catalog reference for a sellable part. The order
// core reads BasePrice only as the default suggestion when a line is first
// associated with the product; it never re-reads the catalog after that
// point, so later price changes do not retroactively affect existing orders.
type Product struct {
	id        string
	code      string
	name      string
	basePrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProduct creates a validated product reference.
func NewProduct(id, code, name string, basePrice decimal.Decimal) (Product, error) {
	product := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setCode(code),
		product.setName(name),
		product.setBasePrice(basePrice),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p Product) ID() string {
	return p.id
}

// Code returns the short catalog code, e.g. "FLT-OIL-204".
func (p Product) Code() string {
	return p.code
}

// Name returns the product display name.
func (p Product) Name() string {
	return p.name
}

// BasePrice returns the catalog price used as the default for new lines.
func (p Product) BasePrice() decimal.Decimal {
	return p.basePrice
}

func (p *Product) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("product code")
	}
	p.code = code
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setBasePrice(basePrice decimal.Decimal) error {
	if !basePrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("basePrice",
			fmt.Errorf("%s is not greater than 0", basePrice))
	}
	p.basePrice = basePrice
	return nil
}
