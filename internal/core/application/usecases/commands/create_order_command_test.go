package commands_test

import (
	"testing"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	items := []commands.ItemSelection{{ItemID: 1, Quantity: 2}}

	t.Run("should create a valid command with the default tip", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			items, false, 0, "",
			"100 Congress Ave", "", "Austin", "TX", "78701",
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.False(t, cmd.Tip().IsCustom())
		assert.False(t, cmd.RewardApplied())
		assert.Equal(t, items, cmd.Items())

		subtotal, _ := kernel.MoneyFromString("20.00")
		assert.Equal(t, "4.00", cmd.Tip().Amount(subtotal).StringFixed())
	})

	t.Run("should drop zero-quantity selections", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			[]commands.ItemSelection{
				{ItemID: 1, Quantity: 2},
				{ItemID: 2, Quantity: 0},
			},
			false, 0, "",
			"100 Congress Ave", "", "Austin", "TX", "78701",
		)

		require.NoError(t, err)
		require.Len(t, cmd.Items(), 1)
		assert.Equal(t, 1, cmd.Items()[0].ItemID)
	})

	t.Run("should reject a cart with nothing to order", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			[]commands.ItemSelection{{ItemID: 1, Quantity: 0}},
			false, 0, "",
			"100 Congress Ave", "", "Austin", "TX", "78701",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrNoItemsSelected)
	})

	t.Run("should prefer a custom tip over the percentage", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			items, false, 0.20, "3.50",
			"100 Congress Ave", "", "Austin", "TX", "78701",
		)

		require.NoError(t, err)
		assert.True(t, cmd.Tip().IsCustom())

		subtotal, _ := kernel.MoneyFromString("20.00")
		assert.Equal(t, "3.50", cmd.Tip().Amount(subtotal).StringFixed())
	})

	t.Run("should reject a non-numeric custom tip", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			items, false, 0, "abc",
			"100 Congress Ave", "", "Austin", "TX", "78701",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a tip rate outside the fixed set", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			items, false, 0.30, "",
			"100 Congress Ave", "", "Austin", "TX", "78701",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a missing street", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			items, false, 0, "",
			"", "", "Austin", "TX", "78701",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
