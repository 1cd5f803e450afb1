package order_test

import (
	"testing"

	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewLine(t *testing.T) {
	t.Run("should create valid line with all valid parameters", func(t *testing.T) {
		line, err := order.NewLine("P1", 2, mustDecimal(t, "25.00"), decimal.Zero)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, "P1", line.ProductID())
		assert.Equal(t, 2, line.Quantity())
		assert.True(t, line.UnitPrice().Equal(mustDecimal(t, "25.00")))
		assert.True(t, line.DiscountPct().IsZero())
	})

	t.Run("should fail with empty product", func(t *testing.T) {
		_, err := order.NewLine("", 1, mustDecimal(t, "10"), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "productId")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLine("P1", 0, mustDecimal(t, "10"), decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with non-positive unit price", func(t *testing.T) {
		_, err := order.NewLine("P1", 1, decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unitPrice")

		_, err = order.NewLine("P1", 1, mustDecimal(t, "-5"), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("should fail with discount outside range", func(t *testing.T) {
		_, err := order.NewLine("P1", 1, mustDecimal(t, "10"), mustDecimal(t, "100.01"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "discountPct")

		_, err = order.NewLine("P1", 1, mustDecimal(t, "10"), mustDecimal(t, "-1"))
		require.Error(t, err)
	})

	t.Run("should accept discount bounds", func(t *testing.T) {
		_, err := order.NewLine("P1", 1, mustDecimal(t, "10"), decimal.Zero)
		require.NoError(t, err)

		_, err = order.NewLine("P1", 1, mustDecimal(t, "10"), mustDecimal(t, "100"))
		require.NoError(t, err)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		_, err := order.NewLine("", 0, decimal.Zero, mustDecimal(t, "200"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unitPrice")
		assert.Contains(t, err.Error(), "discountPct")
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("should fail for zero value line", func(t *testing.T) {
		var line order.Line

		err := line.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineIsNotConstructed, err)
	})
}

func TestLine_Total(t *testing.T) {
	t.Run("should equal the kernel computation", func(t *testing.T) {
		line, err := order.NewLine("P1", 3, mustDecimal(t, "9.99"), mustDecimal(t, "10"))
		require.NoError(t, err)

		total := line.Total()

		assert.True(t, total.Equal(kernel.LineTotal(3, mustDecimal(t, "9.99"), mustDecimal(t, "10"))))
		assert.True(t, total.Equal(mustDecimal(t, "26.973")), "got %s", total)
	})
}
