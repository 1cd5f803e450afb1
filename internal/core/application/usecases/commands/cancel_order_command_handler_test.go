package commands_test

import (
	"testing"

	"repuestos/internal/core/application/usecases/commands"
	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should reject undefined reason", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), order.ReasonUnknown, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should keep note as supplied", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), order.ReasonStockIssue, "back order")

		require.NoError(t, err)
		assert.Equal(t, order.ReasonStockIssue, cmd.Reason())
		assert.Equal(t, "back order", cmd.Note())
	})
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	stored := savedDraft(t, id)

	cmd, err := commands.NewCancelOrderCommand(id, order.ReasonOther, "price mismatch")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	require.NotNil(t, cancelled.CancelReason())
	assert.Equal(t, order.ReasonOther, *cancelled.CancelReason())
	assert.Equal(t, "price mismatch", cancelled.CancelNote())
	repo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OtherWithoutNote(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	stored := savedDraft(t, id)

	cmd, err := commands.NewCancelOrderCommand(id, order.ReasonOther, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrLifecycleConflict)
	assert.Equal(t, order.Draft, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	stored := savedDraft(t, id)
	require.NoError(t, stored.Cancel(order.ReasonDuplicate, ""))

	cmd, err := commands.NewCancelOrderCommand(id, order.ReasonCustomerRequest, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrLifecycleConflict)
	assert.Equal(t, order.ReasonDuplicate, *stored.CancelReason())
}
