package commands_test

import (
	"testing"

	"grabngo/internal/core/application/usecases/commands"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLineRequests() []commands.LineRequest {
	return []commands.LineRequest{
		{ItemID: kernel.NewUUID(), Quantity: 2},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		customerLoc, err := kernel.NewGeoPoint(40.7128, -74.006)
		require.NoError(t, err)

		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			"customer@grabngo.com", "Jane Customer", "350 5th Ave",
			&customerLoc,
			validLineRequests(),
			"Burger House, 21 Spring St", nil,
		)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "customer@grabngo.com", cmd.CustomerEmail())
		assert.Equal(t, "Jane Customer", cmd.CustomerName())
		assert.Equal(t, "350 5th Ave", cmd.CustomerAddress())
		assert.Len(t, cmd.Lines(), 1)
		assert.Equal(t, "Burger House, 21 Spring St", cmd.RestaurantAddress())
		require.NotNil(t, cmd.CustomerLocation())
		assert.True(t, cmd.CustomerLocation().IsEqual(customerLoc))
		assert.Nil(t, cmd.RestaurantLocation())
	})

	t.Run("should fail with empty customer email", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			"", "Jane Customer", "350 5th Ave", nil,
			validLineRequests(),
			"", nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty delivery address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			"customer@grabngo.com", "Jane Customer", "", nil,
			validLineRequests(),
			"", nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			"customer@grabngo.com", "Jane Customer", "350 5th Ave", nil,
			[]commands.LineRequest{},
			"", nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			"customer@grabngo.com", "Jane Customer", "350 5th Ave", nil,
			[]commands.LineRequest{{ItemID: kernel.NewUUID(), Quantity: 0}},
			"", nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed item id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			"customer@grabngo.com", "Jane Customer", "350 5th Ave", nil,
			[]commands.LineRequest{{Quantity: 1}},
			"", nil,
		)

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("should copy lines defensively", func(t *testing.T) {
		lines := validLineRequests()

		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			"customer@grabngo.com", "Jane Customer", "350 5th Ave", nil,
			lines,
			"", nil,
		)
		require.NoError(t, err)

		lines[0].Quantity = 99

		assert.Equal(t, 2, cmd.Lines()[0].Quantity)
	})
}
