package commands_test

import (
	"testing"

	"robodelivery/internal/core/application/usecases/commands"
	"robodelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, productID, 3)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 3, cmd.Quantity())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidProductID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), invalidID, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), quantity)
		require.Error(t, err)
	}
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
