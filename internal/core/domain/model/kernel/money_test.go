package kernel_test

import (
	"testing"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("6.99")

		require.NoError(t, err)
		assert.Equal(t, "6.99", m.StringFixed())
	})

	t.Run("should reject non-numeric input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("abc")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should parse negative amounts", func(t *testing.T) {
		m, err := kernel.MoneyFromString("-1.50")

		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should keep unrounded precision internally", func(t *testing.T) {
		unit, _ := kernel.MoneyFromString("6.99")
		discount := decimal.NewFromFloat(0.9)

		subtotal := unit.MulInt(2).Mul(discount)

		assert.Equal(t, "12.582", subtotal.String())
		assert.Equal(t, "12.58", subtotal.StringFixed())
	})

	t.Run("should add amounts exactly", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("0.1")
		b, _ := kernel.MoneyFromString("0.2")

		assert.Equal(t, "0.3", a.Add(b).String())
	})

	t.Run("zero money is a valid identity", func(t *testing.T) {
		m, _ := kernel.MoneyFromString("5.00")

		assert.True(t, m.Add(kernel.ZeroMoney()).IsEqual(m))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.MoneyFromString("3.50")
	b := kernel.NewMoneyFromFloat(3.5)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.ZeroMoney()))
}
