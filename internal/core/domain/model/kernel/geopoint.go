package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"grabngo/internal/pkg/errs"
	"grabngo/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is Earth's mean radius used by the Haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created via NewGeoPoint
// or NewRandomGeoPointNear.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or NewRandomGeoPointNear constructors")

// GeoPoint represents a geographic position with validated coordinates.
// It is an immutable value object; the zero value is invalid and fails
// validation, so use the constructors to create instances.
//
// Example:
//
//	pickup, err := kernel.NewGeoPoint(40.7128, -74.0060)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Printf("pickup at %s", pickup) // Output: pickup at GeoPoint(40.712800,-74.006000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given latitude and longitude in
// degrees. Latitude must be within [-90, 90] and longitude within
// [-180, 180]; otherwise a ValueIsOutOfRangeError is returned.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// NewRandomGeoPointNear creates a GeoPoint jittered around a center point by
// up to spreadDeg degrees on each axis. Used to stand in for real geocoding
// of customer and restaurant addresses.
func NewRandomGeoPointNear(center GeoPoint, spreadDeg float64) (GeoPoint, error) {
	if err := center.Validate(); err != nil {
		return GeoPoint{}, err
	}

	return NewGeoPoint(
		center.lat+(rand.Float64()-0.5)*spreadDeg,
		center.lng+(rand.Float64()-0.5)*spreadDeg,
	)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points have identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// DistanceKmTo returns the great-circle distance to another point in
// kilometers, computed with the Haversine formula.
func (p GeoPoint) DistanceKmTo(other GeoPoint) float64 {
	const degToRad = math.Pi / 180

	dLat := (other.lat - p.lat) * degToRad
	dLng := (other.lng - p.lng) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p.lat*degToRad)*math.Cos(other.lat*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// String returns "GeoPoint(lat,lng)" with six decimal places.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// Validate checks that the point was created via a constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}
	p.lng = lng
	return nil
}
