package commands

import (
	"errors"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new sales order from
// raw proposed order data. The payload is carried as submitted; structural
// and business validation happens in the domain when the order is built, so
// every violation can be reported to the caller in one pass.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, payload)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payload order.Payload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sales order.
// Validates that the order ID is a properly constructed UUID.
func NewCreateOrderCommand(orderID kernel.UUID, payload order.Payload) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payload returns the raw proposed order data.
func (c CreateOrderCommand) Payload() order.Payload {
	return c.payload
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
