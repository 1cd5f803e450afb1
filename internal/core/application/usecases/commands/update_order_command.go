package commands

import (
	"errors"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to overwrite a draft order's header
// fields and lines with new proposed data. Payload validation is deliberately
// left to the aggregate: a confirmed or cancelled order must answer with a
// lifecycle conflict even when the payload is also invalid.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payload order.Payload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing draft order.
func NewUpdateOrderCommand(orderID kernel.UUID, payload order.Payload) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payload returns the raw proposed order data.
func (c UpdateOrderCommand) Payload() order.Payload {
	return c.payload
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
