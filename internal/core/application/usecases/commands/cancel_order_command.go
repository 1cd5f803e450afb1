package commands

import (
	"errors"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to void an order with an auditable
// reason. The note is optional supplementary detail unless the reason is
// OTHER, which the aggregate enforces.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  order.CancelReason
	note    string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates that the order ID is a properly constructed UUID and that the
// reason is one of the defined cancel-reason values.
func NewCancelOrderCommand(orderID kernel.UUID, reason order.CancelReason, note string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() order.CancelReason {
	return c.reason
}

// Note returns the free-text cancellation detail.
func (c CancelOrderCommand) Note() string {
	return c.note
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason order.CancelReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
