package product_test

import (
	"testing"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/product"
	"robodelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "cargo crate", 70, 30)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "cargo crate", p.Name())
		assert.Equal(t, 70, p.Price())
		assert.Equal(t, 30, p.Weight())
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "cargo crate", 70, 30)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", 70, 30)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "cargo crate", 0, 30)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non_positive_weight", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "cargo crate", 70, -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("constructed_product_is_valid", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "cargo crate", 70, 30)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("zero_value_product_is_rejected", func(t *testing.T) {
		var p product.Product
		err := p.Validate()
		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_IsEqual(t *testing.T) {
	a, err := product.NewProduct(kernel.NewUUID(), "crate a", 10, 10)
	require.NoError(t, err)
	b, err := product.NewProduct(kernel.NewUUID(), "crate b", 10, 10)
	require.NoError(t, err)

	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(nil))
}
