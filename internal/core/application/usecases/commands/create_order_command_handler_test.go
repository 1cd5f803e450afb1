package commands_test

import (
	"errors"
	"testing"

	"repuestos/internal/core/application/usecases/commands"
	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, validPayload())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(id))
	assert.Equal(t, order.Draft, created.Status())
	assert.True(t, created.Totals().Total.Equal(mustDecimal(t, "50.00")))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
}

func TestCreateOrderCommandHandler_Handle_InvalidPayload(t *testing.T) {
	ctx := t.Context()
	p := validPayload()
	p.CustomerID = ""
	p.Lines[0].Quantity = "many"
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), p)
	require.NoError(t, err)

	// Nothing may touch the persistence layer on validation failure.
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidationFailed)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validPayload())
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validPayload())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateOrderCommand_InvalidID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewCreateOrderCommand(invalidID, validPayload())

	require.Error(t, err)
}
