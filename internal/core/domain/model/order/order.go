package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNumberAlreadyAssigned is returned when the persistence collaborator
	// attempts to assign an order number twice. Order numbers are assigned exactly
	// once at creation time and are never editable.
	ErrOrderNumberAlreadyAssigned = errors.New("order number is already assigned")
)

// Order represents a sales order in the system. It is the aggregate root that
// owns the order lifecycle from draft through confirmation or cancellation,
// and the derivation of subtotal/discount/total from its line data.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a customer reference
//   - deliveryDate is never before orderDate
//   - Has at least one line; no two lines reference the same product
//   - Status transitions follow the Draft -> Confirmed / -> Cancelled machine
//   - cancelReason/cancelNote are present only when the order is cancelled
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. All operations are synchronous and
// act only on in-memory state; concurrency control over the durable record
// belongs to the persistence collaborator, which uses the version field as an
// optimistic concurrency token.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable sequential identifier, assigned by
	// the persistence collaborator at creation time; empty until then
	orderNumber string

	// customerID references the customer placing the order
	customerID string

	// orderDate is the date the order was placed
	orderDate time.Time

	// deliveryDate is the promised delivery date, never before orderDate
	deliveryDate time.Time

	// lines is the ordered sequence of product entries
	lines []Line

	// status represents the current state in the order lifecycle
	status Status

	// cancelReason is set only when status is Cancelled
	cancelReason *CancelReason

	// cancelNote carries the free-text detail for a cancellation
	cancelNote string

	// version is the optimistic concurrency token checked by the repository
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Draft status with validated header fields
// and lines. This is the only way to create a fresh order, ensuring all
// business invariants are maintained from the start.
func NewOrder(id kernel.UUID, customerID string, orderDate, deliveryDate time.Time, lines []Line) (*Order, error) {
	o := &Order{
		status:        Draft,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDates(orderDate, deliveryDate),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewOrderFromPayload validates raw proposed order data and builds a Draft
// order from it. When the payload has violations, a ValidationError carrying
// the full list is returned and no order is constructed.
func NewOrderFromPayload(id kernel.UUID, p Payload) (*Order, error) {
	parsed, violations := p.parse()
	if len(violations) > 0 {
		return nil, errs.NewValidationError(violations)
	}

	return NewOrder(id, parsed.customerID, parsed.orderDate, parsed.deliveryDate, parsed.lines)
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid durable status along with the assigned order number,
// cancellation detail, and version.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID string,
	orderDate, deliveryDate time.Time,
	lines []Line,
	status Status,
	cancelReason *CancelReason,
	cancelNote string,
	version int,
) (*Order, error) {
	o := &Order{
		orderNumber:   orderNumber,
		cancelNote:    cancelNote,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDates(orderDate, deliveryDate),
		o.setLines(lines),
		o.setStatus(status),
		o.setCancelReason(cancelReason),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable sequential identifier, or the empty
// string if the order has not been persisted yet.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the referenced customer identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns the promised delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Lines returns a copy of the order's line sequence in entry order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CancelReason returns the recorded cancellation reason.
// Returns nil unless the order is cancelled.
func (o *Order) CancelReason() *CancelReason {
	return o.cancelReason
}

// CancelNote returns the free-text cancellation detail, empty unless recorded.
func (o *Order) CancelNote() string {
	return o.cancelNote
}

// Version returns the optimistic concurrency token of the loaded record.
func (o *Order) Version() int {
	return o.version
}

// BumpVersion advances the optimistic concurrency token after the
// persistence collaborator has written a new revision of the record. Domain
// operations never call it.
func (o *Order) BumpVersion() {
	o.version++
}

// Totals derives the order's monetary aggregates from its lines at full
// precision: subtotal before discount, the aggregate discount, and the total.
func (o *Order) Totals() kernel.Totals {
	return kernel.ComputeTotals(o.lines)
}

// AssignOrderNumber records the sequential identifier produced by the
// persistence collaborator at creation time. The number is assigned exactly
// once and is never editable afterwards.
func (o *Order) AssignOrderNumber(orderNumber string) error {
	if o.orderNumber != "" {
		return ErrOrderNumberAlreadyAssigned
	}
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	o.orderNumber = orderNumber
	return nil
}

// Update overwrites the order's header fields and lines from raw proposed
// data and lets the derived totals follow.
//
// Business rules:
//   - Only Draft orders may be updated; a Confirmed or Cancelled order
//     returns a LifecycleConflictError and is not mutated
//   - The payload must pass validation; violations are returned as a
//     ValidationError and nothing is applied
//
// The operation is all-or-nothing: either every field including the derived
// totals is consistent afterwards, or the order is unchanged.
func (o *Order) Update(p Payload) error {
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}

	parsed, violations := p.parse()
	if len(violations) > 0 {
		return errs.NewValidationError(violations)
	}

	if err := errors.Join(
		o.setCustomerID(parsed.customerID),
		o.setDates(parsed.orderDate, parsed.deliveryDate),
		o.setLines(parsed.lines),
	); err != nil {
		return err
	}

	return nil
}

// Confirm marks the order as a committed sale.
//
// Business rules:
//   - Only Draft orders may be confirmed
//   - Confirmation is irreversible toward Draft; after it the order is
//     read-only except for cancellation
//
// Returns a LifecycleConflictError if the order is not in Draft status.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel voids the order with an auditable reason.
//
// Business rules:
//   - Draft and Confirmed orders may be cancelled; Cancelled is terminal
//   - reason must be one of the defined cancel-reason values
//   - ReasonOther requires a non-empty note; other reasons treat the note
//     as optional supplementary detail
//   - Totals are frozen at their last computed value
//
// A guard failure (undefined reason, or a missing note for ReasonOther)
// is a LifecycleConflictError just like cancelling a cancelled order: the
// transition itself is refused and the order keeps its current status.
func (o *Order) Cancel(reason CancelReason, note string) error {
	if err := reason.Validate(); err != nil {
		return errs.NewLifecycleConflictErrorWithCause(o.status.String(), "cancel", err)
	}

	note = strings.TrimSpace(note)
	if reason.RequiresNote() && note == "" {
		return errs.NewLifecycleConflictErrorWithCause(o.status.String(), "cancel",
			fmt.Errorf("a note is required when the cancel reason is %s", reason))
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = &reason
	o.cancelNote = note
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDates(orderDate, deliveryDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if deliveryDate.Before(orderDate) {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate",
			fmt.Errorf("%s is before order date %s",
				deliveryDate.Format(DateLayout), orderDate.Format(DateLayout)))
	}

	o.orderDate = orderDate
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if seen[line.ProductID()] {
			return errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("product %s appears more than once", line.ProductID()))
		}
		seen[line.ProductID()] = true
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCancelReason(reason *CancelReason) error {
	if reason == nil {
		if o.status == Cancelled {
			return errs.NewValueIsRequiredError("cancelReason")
		}
		return nil
	}

	if o.status != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("cancelReason",
			fmt.Errorf("cancel reason is only valid for cancelled orders, status is %s", o.status))
	}
	if err := reason.Validate(); err != nil {
		return err
	}

	value := *reason
	o.cancelReason = &value
	return nil
}
