package order_test

import (
	"testing"
	"time"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/order"
	"robodelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()

		o, err := order.NewOrder(id, productID, 2, 60, 140)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ProductID().IsEqual(productID))
		assert.Equal(t, 2, o.Quantity())
		assert.Equal(t, 60, o.Weight())
		assert.Equal(t, 140, o.Value())
		assert.Equal(t, order.AwaitingShipment, o.Status())
		assert.Nil(t, o.ArrivedAt())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), 1, 10, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("invalid_product_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, 1, 10, 10)
		require.Error(t, err)
	})

	t.Run("non_positive_dimensions", func(t *testing.T) {
		tests := []struct {
			name                    string
			quantity, weight, value int
		}{
			{"zero_quantity", 0, 10, 10},
			{"negative_quantity", -1, 10, 10},
			{"zero_weight", 1, 0, 10},
			{"zero_value", 1, 10, 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), tt.quantity, tt.weight, tt.value)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 1, 10, 10)
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero_value_order_is_rejected", func(t *testing.T) {
		var o order.Order
		err := o.Validate()
		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil_order_is_rejected", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_Dispatch(t *testing.T) {
	t.Run("awaiting_order_moves_out_for_delivery", func(t *testing.T) {
		o := newAwaitingOrder(t)

		require.NoError(t, o.Dispatch())
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Nil(t, o.ArrivedAt())
	})

	t.Run("second_dispatch_is_rejected", func(t *testing.T) {
		o := newAwaitingOrder(t)
		require.NoError(t, o.Dispatch())

		err := o.Dispatch()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.OutForDelivery, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("out_for_delivery_order_is_delivered", func(t *testing.T) {
		o := newAwaitingOrder(t)
		require.NoError(t, o.Dispatch())

		require.NoError(t, o.Complete())

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.ArrivedAt())
		assert.WithinDuration(t, time.Now().UTC(), *o.ArrivedAt(), time.Minute)
	})

	t.Run("second_completion_is_rejected_and_keeps_arrival", func(t *testing.T) {
		o := newAwaitingOrder(t)
		require.NoError(t, o.Dispatch())
		require.NoError(t, o.Complete())
		firstArrival := *o.ArrivedAt()

		err := o.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, firstArrival, *o.ArrivedAt())
	})

	t.Run("awaiting_order_cannot_be_completed", func(t *testing.T) {
		o := newAwaitingOrder(t)

		err := o.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.AwaitingShipment, o.Status())
		assert.Nil(t, o.ArrivedAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("restores_awaiting_order", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.RestoreOrder(id, kernel.NewUUID(), 3, 90, 210, order.AwaitingShipment, createdAt, nil)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.AwaitingShipment, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("restores_delivered_order_with_arrival", func(t *testing.T) {
		arrivedAt := createdAt.Add(30 * time.Minute)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), 1, 10, 10, order.Delivered, createdAt, &arrivedAt)

		require.NoError(t, err)
		require.NotNil(t, o.ArrivedAt())
		assert.Equal(t, arrivedAt, *o.ArrivedAt())
	})

	t.Run("rejects_delivered_order_without_arrival", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), 1, 10, 10, order.Delivered, createdAt, nil)
		require.Error(t, err)
	})

	t.Run("rejects_awaiting_order_with_arrival", func(t *testing.T) {
		arrivedAt := time.Now().UTC()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), 1, 10, 10, order.AwaitingShipment, createdAt, &arrivedAt)
		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), 1, 10, 10, order.Unknown, createdAt, nil)
		require.Error(t, err)
	})
}

func TestOrder_ArrivedAt_IsACopy(t *testing.T) {
	o := newAwaitingOrder(t)
	require.NoError(t, o.Dispatch())
	require.NoError(t, o.Complete())

	first := o.ArrivedAt()
	*first = first.Add(time.Hour)

	assert.NotEqual(t, *first, *o.ArrivedAt())
}

func newAwaitingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 2, 40, 100)
	require.NoError(t, err)
	return o
}
