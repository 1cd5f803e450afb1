package order

import (
	"errors"
	"fmt"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/pkg/errs"
	"repuestos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

var maxDiscountPct = decimal.NewFromInt(100)

// Line is one product entry within an order. It is an immutable value object:
// the unit price is captured at line-creation time and never re-derived from
// the catalog, so later catalog price changes do not retroactively affect
// existing orders.
//
// Line invariants:
//   - productID references a catalog product and is never empty
//   - quantity is an integer >= 1
//   - unitPrice is > 0
//   - discountPct lies in [0, 100]
type Line struct {
	productID   string
	quantity    int
	unitPrice   decimal.Decimal
	discountPct decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLine creates a validated order line. Returns the joined validation
// errors if any parameter violates the line invariants.
func NewLine(productID string, quantity int, unitPrice, discountPct decimal.Decimal) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setDiscountPct(discountPct),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the referenced catalog product identifier.
func (l Line) ProductID() string {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the unit price captured when the line was created.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// DiscountPct returns the discount percentage in [0, 100].
func (l Line) DiscountPct() decimal.Decimal {
	return l.discountPct
}

// Total returns quantity × unitPrice × (1 − discountPct/100) at full
// precision. Rounding happens only at the persistence/presentation boundary.
func (l Line) Total() decimal.Decimal {
	return kernel.LineTotal(l.quantity, l.unitPrice, l.discountPct)
}

func (l *Line) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setDiscountPct(discountPct decimal.Decimal) error {
	if discountPct.IsNegative() || discountPct.GreaterThan(maxDiscountPct) {
		return errs.NewValueIsOutOfRangeError("discountPct", discountPct.String(), 0, 100)
	}
	l.discountPct = discountPct
	return nil
}
