package order

import (
	"fmt"

	"repuestos/internal/pkg/errs"
)

// CancelReason records why an order was cancelled. Cancellation always
// requires an auditable reason from this fixed enumeration; ReasonOther
// additionally mandates a free-text note.
type CancelReason int

const (
	// ReasonUnknown represents an invalid or undefined cancel reason.
	ReasonUnknown CancelReason = iota

	// ReasonCustomerRequest: the customer asked for the order to be voided.
	ReasonCustomerRequest

	// ReasonStockIssue: one or more parts cannot be supplied.
	ReasonStockIssue

	// ReasonPricingError: the order was captured with wrong prices.
	ReasonPricingError

	// ReasonDuplicate: the order duplicates another one.
	ReasonDuplicate

	// ReasonOther: any other reason; requires an explanatory note.
	ReasonOther
)

func getCancelReasonStrings() map[CancelReason]string {
	return map[CancelReason]string{
		ReasonCustomerRequest: "CUSTOMER_REQUEST",
		ReasonStockIssue:      "STOCK_ISSUE",
		ReasonPricingError:    "PRICING_ERROR",
		ReasonDuplicate:       "DUPLICATE",
		ReasonOther:           "OTHER",
	}
}

// ParseCancelReason converts the wire representation of a cancel reason
// into its enum value. Returns a ValueIsInvalidError for anything outside
// the defined enumeration.
func ParseCancelReason(s string) (CancelReason, error) {
	for reason, str := range getCancelReasonStrings() {
		if str == s {
			return reason, nil
		}
	}
	return ReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cancelReason",
		fmt.Errorf("%q is not a valid cancel reason", s),
	)
}

// Validate checks if the CancelReason value is within the defined enumeration.
func (r CancelReason) Validate() error {
	if _, ok := getCancelReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"cancelReason",
			fmt.Errorf("%d is not a valid cancel reason", r),
		)
	}
	return nil
}

// String returns the wire representation of the reason, e.g. "STOCK_ISSUE".
func (r CancelReason) String() string {
	if str, ok := getCancelReasonStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresNote reports whether this reason mandates a non-empty free-text
// note. Only ReasonOther does; all other reasons treat a supplied note as
// optional supplementary detail.
func (r CancelReason) RequiresNote() bool {
	return r == ReasonOther
}
