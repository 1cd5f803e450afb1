package commands

import (
	"context"

	"repuestos/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles the business logic for editing a draft
// order. The operation is all-or-nothing: either the full update succeeds and
// all derived fields are consistent, or nothing about the order is changed.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
//
// Error kinds a caller can expect:
//   - errs.ObjectNotFoundError when the order id does not resolve
//   - errs.LifecycleConflictError when the order is not in Draft status,
//     or when a concurrent writer won the optimistic version check
//   - errs.ValidationError carrying every payload violation
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Payload()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
