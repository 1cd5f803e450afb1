package kernel

import (
	"github.com/shopspring/decimal"
)

// CurrencyScale is the number of decimal places kept when an amount crosses
// the persistence or presentation boundary.
const CurrencyScale = 2

var hundred = decimal.NewFromInt(100)

// LineTotal computes the amount of a single order line:
//
//	quantity × unitPrice × (1 − discountPct/100)
//
// The result is kept at full precision; callers round with RoundCurrency only
// when the amount is persisted or displayed. Inputs are validated upstream by
// the order payload parser, and decimal arithmetic cannot produce NaN or
// infinity, so the result is always a finite amount.
func LineTotal(quantity int, unitPrice, discountPct decimal.Decimal) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return gross.Mul(hundred.Sub(discountPct)).Div(hundred)
}

// Totals holds the derived monetary aggregates of an order.
// The invariant Subtotal − Total == DiscountTotal holds exactly.
type Totals struct {
	// Subtotal is the sum of quantity × unitPrice over all lines, before discount.
	Subtotal decimal.Decimal

	// DiscountTotal is the aggregate discount applied: Subtotal minus Total.
	DiscountTotal decimal.Decimal

	// Total is the sum of all line totals after discount.
	Total decimal.Decimal
}

// PricedLine is the view of an order line needed to derive totals.
type PricedLine interface {
	Quantity() int
	UnitPrice() decimal.Decimal
	DiscountPct() decimal.Decimal
}

// ComputeTotals derives subtotal, discount total, and total from the given
// lines at full precision. An empty slice yields all-zero totals; a persisted
// order always has at least one line, so zero totals only occur transiently
// while a draft is being assembled.
func ComputeTotals[L PricedLine](lines []L) Totals {
	subtotal := decimal.Zero
	total := decimal.Zero

	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity()))
		subtotal = subtotal.Add(line.UnitPrice().Mul(qty))
		total = total.Add(LineTotal(line.Quantity(), line.UnitPrice(), line.DiscountPct()))
	}

	return Totals{
		Subtotal:      subtotal,
		DiscountTotal: subtotal.Sub(total),
		Total:         total,
	}
}

// RoundCurrency rounds an amount to currency precision. This is the only
// rounding step in the system and is applied at the persistence and
// presentation boundaries exclusively.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CurrencyScale)
}
