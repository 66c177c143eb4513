package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderItemCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()

	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewAddOrderItemCommand(orderID, productID, "Notebook", 2, decimal.NewFromInt(100))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, productID, cmd.ProductID())
		assert.Equal(t, "Notebook", cmd.ProductName())
		assert.Equal(t, 2, cmd.Quantity())
		assert.True(t, decimal.NewFromInt(100).Equal(cmd.UnitPrice()))
	})

	t.Run("quantity is not range checked", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(orderID, productID, "Notebook", -1, decimal.NewFromInt(-5))

		require.NoError(t, err)
	})

	t.Run("every invalid field is reported", func(t *testing.T) {
		_, err := commands.NewAddOrderItemCommand(kernel.UUID{}, kernel.UUID{}, " ", 1, decimal.Zero)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "ProductName should not be empty or null.")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.AddOrderItemCommand

		assert.Equal(t, commands.ErrAddOrderItemCommandIsNotConstructed, cmd.Validate())
	})
}
