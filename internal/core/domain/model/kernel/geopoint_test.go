package kernel_test

import (
	"fmt"
	"testing"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		testCases := []struct {
			lat float64
			lng float64
		}{
			{40.7128, -74.0060},
			{0, 0},
			{-90, -180},
			{90, 180},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("(%v,%v)", tc.lat, tc.lng), func(t *testing.T) {
				p, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.NoError(t, err)
				assert.InDelta(t, tc.lat, p.Lat(), 1e-9)
				assert.InDelta(t, tc.lng, p.Lng(), 1e-9)
				require.NoError(t, p.Validate())
			})
		}
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		testCases := []struct {
			name string
			lat  float64
			lng  float64
		}{
			{"latitude above max", 90.1, 0},
			{"latitude below min", -90.1, 0},
			{"longitude above max", 0, 180.1},
			{"longitude below min", 0, -180.1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(40.7306, -73.9352)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeoPoint_DistanceKmTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)

		assert.InDelta(t, 0, p.DistanceKmTo(p), 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		downtown, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)
		midtown, err := kernel.NewGeoPoint(40.7549, -73.9840)
		require.NoError(t, err)

		assert.InDelta(t, downtown.DistanceKmTo(midtown), midtown.DistanceKmTo(downtown), 1e-9)
	})

	t.Run("known distance within tolerance", func(t *testing.T) {
		// Manhattan downtown to midtown is roughly 5 km as the crow flies.
		downtown, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)
		midtown, err := kernel.NewGeoPoint(40.7549, -73.9840)
		require.NoError(t, err)

		d := downtown.DistanceKmTo(midtown)
		assert.Greater(t, d, 4.0)
		assert.Less(t, d, 6.0)
	})
}

func TestNewRandomGeoPointNear(t *testing.T) {
	t.Run("stays within spread of the center", func(t *testing.T) {
		center, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			p, randErr := kernel.NewRandomGeoPointNear(center, 0.05)
			require.NoError(t, randErr)

			assert.InDelta(t, center.Lat(), p.Lat(), 0.025)
			assert.InDelta(t, center.Lng(), p.Lng(), 0.025)
		}
	})

	t.Run("rejects unconstructed center", func(t *testing.T) {
		var center kernel.GeoPoint

		_, err := kernel.NewRandomGeoPointNear(center, 0.05)

		require.Error(t, err)
	})
}
