package guard_test

import (
	"errors"
	"testing"

	"robodelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage shows the intended embedding pattern on a
// domain value object.
func TestConstructorGuardUsage(t *testing.T) {
	type capacity struct {
		units int
		guard guard.ConstructorGuard
	}

	errCapacityNotConstructed := errors.New("capacity must be created via its constructor")

	newCapacity := func(units int) capacity {
		return capacity{units: units, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_object_is_valid", func(t *testing.T) {
		c := newCapacity(100)
		require.NoError(t, c.guard.Validate(errCapacityNotConstructed))
		assert.Equal(t, 100, c.units)
	})

	t.Run("zero_value_object_is_rejected", func(t *testing.T) {
		var c capacity
		err := c.guard.Validate(errCapacityNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errCapacityNotConstructed, err)
	})
}
