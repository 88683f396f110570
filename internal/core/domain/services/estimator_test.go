package services_test

import (
	"testing"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomEstimator_DistanceKm(t *testing.T) {
	estimator := services.NewRandomEstimator()
	driver, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		d := estimator.DistanceKm(driver, nil)

		assert.GreaterOrEqual(t, d, 2.0)
		assert.Less(t, d, 7.0)
	}
}

func TestRandomEstimator_DropoffETAMinutes(t *testing.T) {
	estimator := services.NewRandomEstimator()

	for i := 0; i < 100; i++ {
		eta := estimator.DropoffETAMinutes()

		assert.GreaterOrEqual(t, eta, 3)
		assert.LessOrEqual(t, eta, 8)
	}
}

func TestHaversineEstimator(t *testing.T) {
	estimator := services.NewHaversineEstimator(services.NewRandomEstimator())

	t.Run("uses coordinates when the pickup point is known", func(t *testing.T) {
		driver, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)
		pickup, err := kernel.NewGeoPoint(40.7549, -73.9840)
		require.NoError(t, err)

		d := estimator.DistanceKm(driver, &pickup)

		assert.InDelta(t, driver.DistanceKmTo(pickup), d, 1e-9)
	})

	t.Run("clamps near-zero distances", func(t *testing.T) {
		driver, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)
		pickup := driver

		d := estimator.DistanceKm(driver, &pickup)

		assert.InDelta(t, 0.1, d, 1e-9)
	})

	t.Run("falls back to the placeholder without coordinates", func(t *testing.T) {
		driver, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)

		d := estimator.DistanceKm(driver, nil)

		assert.GreaterOrEqual(t, d, 2.0)
		assert.Less(t, d, 7.0)
	})
}
