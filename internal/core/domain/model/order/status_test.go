package order_test

import (
	"fmt"
	"testing"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Draft))
	assert.Equal(t, 1, int(order.Initiated))
	assert.Equal(t, 2, int(order.Paid))
	assert.Equal(t, 3, int(order.Delivered))
	assert.Equal(t, 4, int(order.Canceled))
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{order.Draft, order.Initiated, order.Paid, order.Delivered, order.Canceled} {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject out of range values", func(t *testing.T) {
		for _, status := range []order.Status{-1, 5, 99} {
			err := status.Validate()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.Draft.String())
	assert.Equal(t, "Initiated", order.Initiated.String())
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Canceled", order.Canceled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, order.Draft.IsFinal())
	assert.False(t, order.Initiated.IsFinal())
	assert.False(t, order.Paid.IsFinal())
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Canceled.IsFinal())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every status name", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.Initiated, order.Paid, order.Delivered, order.Canceled} {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("Shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"Shipped" is not a valid status`)
	})
}
