package commands_test

import (
	"errors"
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle(t *testing.T) {
	t.Run("merges into the existing line and stores the order", func(t *testing.T) {
		ctx := t.Context()
		productID := kernel.NewUUID()
		o := draftWith(t, order.NewItem(productID, "Notebook", 2, decimal.NewFromInt(100)))
		cmd, _ := commands.NewAddOrderItemCommand(o.ID(), productID, "Notebook", 1, decimal.NewFromInt(100))

		m := newOrderUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.repo).Once(),
			m.repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			m.repo.On("Update", ctx, o).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewAddOrderItemCommandHandler(m.factory)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, o.ItemCount())
		assert.Equal(t, 3, o.Items()[0].Quantity())
		assert.True(t, decimal.NewFromInt(300).Equal(o.Total()))
		m.assertExpectations(t)
	})

	t.Run("order not found", func(t *testing.T) {
		ctx := t.Context()
		orderID := kernel.NewUUID()
		cmd, _ := commands.NewAddOrderItemCommand(orderID, kernel.NewUUID(), "Notebook", 1, decimal.NewFromInt(1))

		m := newOrderUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.repo).Once(),
			m.repo.On("GetForUpdate", ctx, orderID).
				Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewAddOrderItemCommandHandler(m.factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("update error", func(t *testing.T) {
		ctx := t.Context()
		o := draftWith(t)
		cmd, _ := commands.NewAddOrderItemCommand(o.ID(), kernel.NewUUID(), "Notebook", 1, decimal.NewFromInt(1))

		m := newOrderUoWMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.repo).Once(),
			m.repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			m.repo.On("Update", ctx, o).Return(errors.New("update error")).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewAddOrderItemCommandHandler(m.factory)
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "update error")
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.assertExpectations(t)
	})
}
