package services

import (
	"math"
	"math/rand"

	"grabngo/internal/core/domain/model/kernel"
)

// RouteEstimator supplies the distance and timing figures consumed by the
// order lifecycle. The lifecycle itself stays deterministic: all randomness
// and any future routing/geocoding integration live behind this interface.
type RouteEstimator interface {
	// DistanceKm estimates the driving distance from the driver's position
	// to the pickup point. pickup may be nil when the ordering context had
	// no coordinates.
	DistanceKm(driver kernel.GeoPoint, pickup *kernel.GeoPoint) float64

	// DropoffETAMinutes estimates the remaining minutes once the driver
	// heads to the customer.
	DropoffETAMinutes() int
}

const (
	// randomDistanceBaseKm and randomDistanceSpreadKm bound the placeholder
	// assignment distance to [2, 7) km.
	randomDistanceBaseKm   = 2.0
	randomDistanceSpreadKm = 5.0

	// randomDropoffBaseMin and randomDropoffSpreadMin bound the placeholder
	// drop-off ETA to roughly [3, 8] minutes.
	randomDropoffBaseMin   = 3.0
	randomDropoffSpreadMin = 5.0

	// minAssignmentDistanceKm keeps very short hops from producing a zero
	// distance, which the assignment transition rejects.
	minAssignmentDistanceKm = 0.1
)

// RandomEstimator produces placeholder distance and ETA values. No real
// routing provider is integrated; the figures only need to look plausible
// on the driver dashboard.
type RandomEstimator struct{}

// NewRandomEstimator creates the placeholder estimator.
func NewRandomEstimator() RandomEstimator {
	return RandomEstimator{}
}

// DistanceKm returns a random distance in [2, 7) km regardless of positions.
func (RandomEstimator) DistanceKm(_ kernel.GeoPoint, _ *kernel.GeoPoint) float64 {
	return randomDistanceBaseKm + rand.Float64()*randomDistanceSpreadKm
}

// DropoffETAMinutes returns a random ETA of round(3 + random*5) minutes.
func (RandomEstimator) DropoffETAMinutes() int {
	return int(math.Round(randomDropoffBaseMin + rand.Float64()*randomDropoffSpreadMin))
}

// HaversineEstimator computes the assignment distance from actual
// coordinates via the great-circle distance, falling back to a placeholder
// estimator when the pickup point is unknown. Drop-off ETAs are delegated
// to the fallback: straight-line distance says little about city traffic.
type HaversineEstimator struct {
	fallback RouteEstimator
}

// NewHaversineEstimator creates a coordinate-based estimator with the given
// fallback for missing pickup coordinates.
func NewHaversineEstimator(fallback RouteEstimator) HaversineEstimator {
	return HaversineEstimator{fallback: fallback}
}

// DistanceKm returns the great-circle distance to the pickup point, clamped
// to a small minimum so assignment never sees a zero distance.
func (e HaversineEstimator) DistanceKm(driver kernel.GeoPoint, pickup *kernel.GeoPoint) float64 {
	if pickup == nil {
		return e.fallback.DistanceKm(driver, pickup)
	}
	return math.Max(driver.DistanceKmTo(*pickup), minAssignmentDistanceKm)
}

// DropoffETAMinutes delegates to the fallback estimator.
func (e HaversineEstimator) DropoffETAMinutes() int {
	return e.fallback.DropoffETAMinutes()
}
