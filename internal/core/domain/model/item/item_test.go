package item_test

import (
	"testing"
	"time"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T) *item.Item {
	t.Helper()

	i, err := item.NewItem(
		kernel.NewUUID(),
		"Classic Cheeseburger",
		"Juicy beef patty with cheese, lettuce, tomato, and special sauce",
		10.99,
		item.CategoryFood,
		"https://images.example.com/burger.jpg",
		"Burger House",
		12,
		4.7,
	)
	require.NoError(t, err)
	return i
}

func TestNewItem(t *testing.T) {
	t.Run("creates a valid available item", func(t *testing.T) {
		i := newTestItem(t)

		require.NoError(t, i.Validate())
		assert.Equal(t, "Classic Cheeseburger", i.Name())
		assert.InDelta(t, 10.99, i.Price(), 1e-9)
		assert.Equal(t, item.CategoryFood, i.Category())
		assert.Equal(t, "Burger House", i.Store())
		assert.Equal(t, 12, i.PrepTime())
		assert.InDelta(t, 4.7, i.Rating(), 1e-9)
		assert.True(t, i.IsAvailable())
		assert.WithinDuration(t, time.Now().UTC(), i.CreatedAt(), time.Minute)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name     string
			mutate   func() (*item.Item, error)
			sentinel error
		}{
			{
				name: "empty name",
				mutate: func() (*item.Item, error) {
					return item.NewItem(kernel.NewUUID(), "", "", 1, item.CategoryFood, "", "", 0, 0)
				},
				sentinel: errs.ErrValueIsRequired,
			},
			{
				name: "negative price",
				mutate: func() (*item.Item, error) {
					return item.NewItem(kernel.NewUUID(), "Milk", "", -0.01, item.CategoryGrocery, "", "", 0, 0)
				},
				sentinel: errs.ErrValueIsInvalid,
			},
			{
				name: "unknown category",
				mutate: func() (*item.Item, error) {
					return item.NewItem(kernel.NewUUID(), "Milk", "", 1, item.CategoryUnknown, "", "", 0, 0)
				},
				sentinel: errs.ErrValueIsInvalid,
			},
			{
				name: "negative prep time",
				mutate: func() (*item.Item, error) {
					return item.NewItem(kernel.NewUUID(), "Milk", "", 1, item.CategoryGrocery, "", "", -1, 0)
				},
				sentinel: errs.ErrValueIsInvalid,
			},
			{
				name: "rating above max",
				mutate: func() (*item.Item, error) {
					return item.NewItem(kernel.NewUUID(), "Milk", "", 1, item.CategoryGrocery, "", "", 0, 5.5)
				},
				sentinel: errs.ErrValueIsOutOfRange,
			},
			{
				name: "invalid id",
				mutate: func() (*item.Item, error) {
					return item.NewItem(kernel.UUID{}, "Milk", "", 1, item.CategoryGrocery, "", "", 0, 0)
				},
				sentinel: errs.ErrValueIsRequired,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.mutate()

				require.Error(t, err)
				require.ErrorIs(t, err, tc.sentinel)
			})
		}
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("keeps stored availability and timestamp", func(t *testing.T) {
		createdAt := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

		i, err := item.RestoreItem(
			kernel.NewUUID(), "Organic Milk", "Fresh organic whole milk", 5.99,
			item.CategoryGrocery, "", "Fresh Mart", 5, 4.5, false, createdAt,
		)

		require.NoError(t, err)
		assert.False(t, i.IsAvailable())
		assert.Equal(t, createdAt, i.CreatedAt())
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("direct struct construction fails validation", func(t *testing.T) {
		var i item.Item

		err := i.Validate()

		assert.Equal(t, item.ErrItemIsNotConstructed, err)
	})
}

func TestItem_Availability(t *testing.T) {
	i := newTestItem(t)

	i.MarkUnavailable()
	assert.False(t, i.IsAvailable())

	i.MarkAvailable()
	assert.True(t, i.IsAvailable())
}

func TestItem_IsEqual(t *testing.T) {
	a := newTestItem(t)
	b := newTestItem(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
