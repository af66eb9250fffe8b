package kernel

import (
	"errors"
	"fmt"
	"math"

	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

const (
	// MinLongitude is the smallest valid WGS84 longitude in degrees.
	MinLongitude float64 = -180
	// MaxLongitude is the largest valid WGS84 longitude in degrees.
	MaxLongitude float64 = 180
	// MinLatitude is the smallest valid WGS84 latitude in degrees.
	MinLatitude float64 = -90
	// MaxLatitude is the largest valid WGS84 latitude in degrees.
	MaxLatitude float64 = 90

	// earthRadiusKm is the mean Earth radius used for great-circle distances.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate on the WGS84 ellipsoid.
// Following the GeoJSON convention, coordinates are always handled in
// (longitude, latitude) order. GeoPoint is an immutable value object;
// its zero value is invalid and fails validation.
//
// Example:
//
//	pickup, err := kernel.NewGeoPoint(106.8456, -6.2088) // Jakarta
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	longitude float64
	latitude  float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given longitude and latitude in degrees.
// Longitude must be within [-180, 180] and latitude within [-90, 90].
// Returns a validation error if either coordinate is out of bounds or not a
// finite number.
func NewGeoPoint(longitude float64, latitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLongitude(longitude), point.setLatitude(latitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through its constructor.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Longitude returns the longitude in degrees, within [-180, 180] for
// properly constructed points.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Latitude returns the latitude in degrees, within [-90, 90] for
// properly constructed points.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// String renders the point as "GeoPoint(lon,lat)".
// Implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.longitude, p.latitude)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.longitude == other.longitude && p.latitude == other.latitude, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula. Both points must be properly
// constructed.
//
// Example:
//
//	jakarta, _ := kernel.NewGeoPoint(106.8456, -6.2088)
//	bandung, _ := kernel.NewGeoPoint(107.6191, -6.9175)
//	km, _ := jakarta.DistanceKm(bandung) // ≈ 116 km
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - p.latitude) * math.Pi / 180
	dLon := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLongitude sets the longitude with validation.
// Note: private setters use pointer receivers to enable self-encapsulated
// validation during construction, while public methods use value receivers.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

// setLatitude sets the latitude with validation.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}
