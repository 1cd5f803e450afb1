package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"repuestos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format orders are exchanged in.
const DateLayout = "2006-01-02"

// LinePayload is the raw client input for one order line. Numeric fields
// arrive as strings and are parsed here with a defined failure mode:
// non-numeric input is a validation violation, never silently coerced to
// zero, so bad input can never be masked inside a persisted total.
type LinePayload struct {
	ProductID   string
	Quantity    string
	UnitPrice   string
	DiscountPct string
}

// Payload is the raw proposed order data submitted by a caller (form UI or
// API layer) before any validation or coercion has happened.
type Payload struct {
	CustomerID   string
	OrderDate    string
	DeliveryDate string
	Lines        []LinePayload
}

// parsedPayload is a Payload that survived validation: dates parsed,
// numerics coerced, lines constructed.
type parsedPayload struct {
	customerID   string
	orderDate    time.Time
	deliveryDate time.Time
	lines        []Line
}

// ValidatePayload checks the structural and business validity of raw order
// data and reports every violation found, not just the first, so a caller
// can surface all problems to the user in one pass. An empty result means
// the payload is valid.
//
// Checks, all evaluated independently:
//   - customerId non-empty
//   - orderDate and deliveryDate present and parseable calendar dates
//   - deliveryDate >= orderDate (only when both parse; attached to deliveryDate)
//   - at least one line
//   - per line: productId non-empty, quantity integer >= 1, unitPrice > 0,
//     discountPct in [0, 100]; attached to the line index and field
//   - no two lines share a productId; every duplicate beyond the first
//     occurrence is flagged on that line's productId field
//
// Validation is pure: it has no side effects and never touches persisted state.
func ValidatePayload(p Payload) []errs.Violation {
	_, violations := p.parse()
	return violations
}

// parse validates the payload and, when a part of it is valid, produces the
// coerced representation alongside the accumulated violations. Lines are only
// assembled for the caller when the whole payload is violation-free.
func (p Payload) parse() (parsedPayload, []errs.Violation) {
	var violations []errs.Violation
	parsed := parsedPayload{customerID: strings.TrimSpace(p.CustomerID)}

	if parsed.customerID == "" {
		violations = append(violations, errs.Violation{
			Field:   "customerId",
			Message: "customer is required",
		})
	}

	orderDate, orderDateOK := parseDate(&violations, "orderDate", p.OrderDate)
	deliveryDate, deliveryDateOK := parseDate(&violations, "deliveryDate", p.DeliveryDate)
	parsed.orderDate = orderDate
	parsed.deliveryDate = deliveryDate

	if orderDateOK && deliveryDateOK && deliveryDate.Before(orderDate) {
		violations = append(violations, errs.Violation{
			Field:   "deliveryDate",
			Message: "deliveryDate must be on or after orderDate",
		})
	}

	if len(p.Lines) == 0 {
		violations = append(violations, errs.Violation{
			Field:   "lines",
			Message: "at least one line is required",
		})
	}

	seenProducts := make(map[string]bool, len(p.Lines))
	lines := make([]Line, 0, len(p.Lines))

	for i, lp := range p.Lines {
		before := len(violations)

		productID := strings.TrimSpace(lp.ProductID)
		if productID == "" {
			violations = append(violations, lineViolation(i, "productId", "product is required"))
		} else if seenProducts[productID] {
			violations = append(violations, lineViolation(i, "productId", "duplicate product within order"))
		} else {
			seenProducts[productID] = true
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(lp.Quantity))
		if err != nil || quantity < 1 {
			violations = append(violations,
				lineViolation(i, "quantity", "quantity must be an integer greater than or equal to 1"))
		}

		unitPrice, err := decimal.NewFromString(strings.TrimSpace(lp.UnitPrice))
		if err != nil || !unitPrice.IsPositive() {
			violations = append(violations,
				lineViolation(i, "unitPrice", "unitPrice must be a number greater than 0"))
		}

		discountPct, err := decimal.NewFromString(strings.TrimSpace(lp.DiscountPct))
		if err != nil || discountPct.IsNegative() || discountPct.GreaterThan(maxDiscountPct) {
			violations = append(violations,
				lineViolation(i, "discountPct", "discountPct must be a number between 0 and 100"))
		}

		if len(violations) > before {
			continue
		}

		line, err := NewLine(productID, quantity, unitPrice, discountPct)
		if err != nil {
			violations = append(violations, lineViolation(i, "productId", err.Error()))
			continue
		}
		lines = append(lines, line)
	}

	parsed.lines = lines
	return parsed, violations
}

func parseDate(violations *[]errs.Violation, field, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*violations = append(*violations, errs.Violation{
			Field:   field,
			Message: "date is required",
		})
		return time.Time{}, false
	}

	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		*violations = append(*violations, errs.Violation{
			Field:   field,
			Message: "date must use format YYYY-MM-DD",
		})
		return time.Time{}, false
	}

	return date, true
}

func lineViolation(index int, field, message string) errs.Violation {
	return errs.Violation{
		Field:   fmt.Sprintf("lines[%d].%s", index, field),
		Message: message,
	}
}
