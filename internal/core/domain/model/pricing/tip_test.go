package pricing_test

import (
	"testing"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/pricing"
	"tastyfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentageTip(t *testing.T) {
	t.Run("should accept every rate in the fixed set", func(t *testing.T) {
		for _, rate := range pricing.TipPercentages() {
			tip, err := pricing.NewPercentageTip(rate)

			require.NoError(t, err)
			assert.False(t, tip.IsCustom())
		}
	})

	t.Run("should reject a rate outside the fixed set", func(t *testing.T) {
		_, err := pricing.NewPercentageTip(decimal.NewFromFloat(0.30))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCustomTip(t *testing.T) {
	t.Run("should accept a non-negative amount", func(t *testing.T) {
		tip, err := pricing.NewCustomTip("3.50")

		require.NoError(t, err)
		assert.True(t, tip.IsCustom())
	})

	t.Run("should accept zero", func(t *testing.T) {
		tip, err := pricing.NewCustomTip("0")

		require.NoError(t, err)
		assert.True(t, tip.IsCustom())
	})

	t.Run("should reject non-numeric input instead of coercing to zero", func(t *testing.T) {
		_, err := pricing.NewCustomTip("abc")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := pricing.NewCustomTip("-2.00")

		require.Error(t, err)
	})
}

func TestTipSelection_Amount(t *testing.T) {
	subtotal, _ := kernel.MoneyFromString("20.00")

	t.Run("percentage tip scales the subtotal", func(t *testing.T) {
		tip, _ := pricing.NewPercentageTip(decimal.NewFromFloat(0.20))

		assert.Equal(t, "4.00", tip.Amount(subtotal).StringFixed())
	})

	t.Run("custom tip is used verbatim and overrides any percentage", func(t *testing.T) {
		tip, _ := pricing.NewCustomTip("3.50")

		assert.Equal(t, "3.50", tip.Amount(subtotal).StringFixed())
	})

	t.Run("default selection is the 20 percent tip", func(t *testing.T) {
		tip := pricing.DefaultTipSelection()

		assert.False(t, tip.IsCustom())
		assert.Equal(t, "4.00", tip.Amount(subtotal).StringFixed())
	})
}
