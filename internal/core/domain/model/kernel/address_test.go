package kernel_test

import (
	"testing"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address with all parts", func(t *testing.T) {
		a, err := kernel.NewAddress("100 Main St", "Apt 4B", "Austin", "TX", "78701")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "100 Main St", a.Street())
		assert.Equal(t, "Apt 4B", a.Apt())
		assert.Equal(t, "100 Main St, Apt 4B, Austin, TX 78701", a.String())
	})

	t.Run("should format without optional apartment", func(t *testing.T) {
		a, err := kernel.NewAddress("100 Main St", "", "Austin", "TX", "78701")

		require.NoError(t, err)
		assert.Equal(t, "100 Main St, Austin, TX 78701", a.String())
	})

	t.Run("should require street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "Austin", "TX", "78701")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
	})

	t.Run("should require city", func(t *testing.T) {
		_, err := kernel.NewAddress("100 Main St", "", "", "TX", "78701")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should require state", func(t *testing.T) {
		_, err := kernel.NewAddress("100 Main St", "", "Austin", "", "78701")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "state")
	})

	t.Run("should require zip", func(t *testing.T) {
		_, err := kernel.NewAddress("100 Main St", "", "Austin", "TX", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "zip")
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var a kernel.Address

		assert.Equal(t, kernel.ErrAddressIsNotConstructed, a.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("100 Main St", "", "Austin", "TX", "78701")
	b, _ := kernel.NewAddress("100 Main St", "", "Austin", "TX", "78701")
	c, _ := kernel.NewAddress("200 Oak Ave", "", "Austin", "TX", "78701")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
