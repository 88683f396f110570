package commands_test

import (
	"testing"

	"grabngo/internal/core/application/usecases/commands"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand(t *testing.T) {
	t.Run("should create bare advance command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAdvanceOrderCommand(orderID, nil, nil)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Nil(t, cmd.TargetStatus())
		assert.Nil(t, cmd.DriverLocation())
	})

	t.Run("should carry target status and location", func(t *testing.T) {
		target := order.StatusPreparing
		loc, err := kernel.NewGeoPoint(40.758, -73.9855)
		require.NoError(t, err)

		cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), &target, &loc)

		require.NoError(t, err)
		require.NotNil(t, cmd.TargetStatus())
		assert.Equal(t, order.StatusPreparing, *cmd.TargetStatus())
		require.NotNil(t, cmd.DriverLocation())
		assert.True(t, cmd.DriverLocation().IsEqual(loc))
	})

	t.Run("should copy optional values", func(t *testing.T) {
		target := order.StatusPreparing
		loc, err := kernel.NewGeoPoint(40.758, -73.9855)
		require.NoError(t, err)

		cmd, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), &target, &loc)
		require.NoError(t, err)

		target = order.StatusDelivered

		assert.Equal(t, order.StatusPreparing, *cmd.TargetStatus())
	})

	t.Run("should fail with unconstructed order id", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderCommand(kernel.UUID{}, nil, nil)

		require.Error(t, err)
	})

	t.Run("should fail with invalid target status", func(t *testing.T) {
		target := order.StatusUnknown

		_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), &target, nil)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed driver location", func(t *testing.T) {
		loc := kernel.GeoPoint{}

		_, err := commands.NewAdvanceOrderCommand(kernel.NewUUID(), nil, &loc)

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.AdvanceOrderCommand

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrAdvanceOrderCommandIsNotConstructed)
	})
}
