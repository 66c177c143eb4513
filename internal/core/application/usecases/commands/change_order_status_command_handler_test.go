package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		transition commands.Transition
		want       order.Status
	}{
		{commands.TransitionStart, order.Initiated},
		{commands.TransitionFinalize, order.Paid},
		{commands.TransitionDeliver, order.Delivered},
		{commands.TransitionCancel, order.Canceled},
		{commands.TransitionDraft, order.Draft},
	}

	for _, tt := range tests {
		t.Run(string(tt.transition), func(t *testing.T) {
			ctx := t.Context()
			o := draftWith(t)
			o.Cancel()
			cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), tt.transition)

			m := newOrderUoWMocks()
			mock.InOrder(
				m.uow.On("Begin", ctx).Return(nil).Once(),
				m.uow.On("OrderRepository").Return(m.repo).Once(),
				m.repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
				m.repo.On("Update", ctx, o).Return(nil).Once(),
				m.uow.On("Commit", ctx).Return(nil).Once(),
				m.uow.On("Rollback", ctx).Return(nil).Once(),
			)

			h := commands.NewChangeOrderStatusCommandHandler(m.factory)
			status, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.want, o.Status())
			m.assertExpectations(t)
		})
	}
}
