package order

import (
	"fmt"

	"repuestos/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Confirmed ──> Cancelled
//	  │                        ▲
//	  └────────────────────────┘
//
// Draft orders may be edited and re-saved any number of times. Confirmation
// is a one-way commitment gate: a confirmed order must not silently change,
// and cancellation is the only escape hatch. Cancelled is terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an order whose state has not been loaded yet.
	// This value (0) is never a durable status and fails validation;
	// it exists so "no data yet" is never confused with a real state.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Orders in this status are editable and may be confirmed or cancelled.
	Draft

	// Confirmed indicates the order represents a committed sale.
	// Confirmed orders are read-only except for cancellation.
	Confirmed

	// Cancelled indicates the order has been voided with a recorded reason.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's not a durable status
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is a valid durable status.
//
// Valid statuses are: Draft, Confirmed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateEdit checks whether an order may be edited in its current status.
//
// Only Draft orders are editable. Attempting to edit a Confirmed or
// Cancelled order returns a LifecycleConflictError so the caller can
// refresh the order's true status instead of retrying blindly.
func (s Status) ValidateEdit() error {
	if s != Draft {
		return errs.NewLifecycleConflictError(s.String(), "update")
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed
//
// Invalid transitions:
//   - Confirmed -> Confirmed (already confirmed)
//   - Cancelled -> Confirmed (cancelled orders are terminal)
//   - Unknown -> Confirmed (invalid initial state)
//
// Returns (Confirmed, nil) on a valid transition, or (0, LifecycleConflictError)
// if confirmation is not allowed from the current status.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewLifecycleConflictError(s.String(), "confirm")
	}
	return Confirmed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft -> Cancelled
//   - Confirmed -> Cancelled
//
// Invalid transitions:
//   - Cancelled -> Cancelled (already cancelled)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns (Cancelled, nil) on a valid transition, or (0, LifecycleConflictError)
// if cancellation is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Confirmed {
		return 0, errs.NewLifecycleConflictError(s.String(), "cancel")
	}
	return Cancelled, nil
}
