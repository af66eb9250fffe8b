package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

var (
	// ErrWaypointIsNotConstructed is returned when a Waypoint was not created
	// via NewWaypoint.
	ErrWaypointIsNotConstructed = errs.NewValueIsRequiredError(
		"waypoint must be created via NewWaypoint constructor")

	// ErrRouteIsNotConstructed is returned when a Route was not created
	// via NewRoute.
	ErrRouteIsNotConstructed = errs.NewValueIsRequiredError(
		"route must be created via NewRoute constructor")
)

// Waypoint couples a human-readable address with its geographic point.
type Waypoint struct { //nolint:recvcheck //using for validation
	address string
	point   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewWaypoint creates a validated Waypoint. The address is required and the
// point must be a properly constructed GeoPoint.
func NewWaypoint(address string, point kernel.GeoPoint) (Waypoint, error) {
	waypoint := Waypoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(waypoint.setAddress(address), waypoint.setPoint(point)); err != nil {
		return Waypoint{}, err
	}

	return waypoint, nil
}

// Validate checks that the Waypoint was created through NewWaypoint.
func (w Waypoint) Validate() error {
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

// Address returns the human-readable address of the waypoint.
func (w Waypoint) Address() string {
	return w.address
}

// Point returns the geographic coordinate of the waypoint.
func (w Waypoint) Point() kernel.GeoPoint {
	return w.point
}

func (w *Waypoint) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("waypoint address")
	}
	w.address = strings.TrimSpace(address)
	return nil
}

func (w *Waypoint) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	w.point = point
	return nil
}

// Route describes where an order travels: the pickup and destination
// waypoints and the distance between them. The distance is supplied by the
// caller (typically a routing service), rounded to two decimals at
// construction, and drives both the delivery cost and the hunter reward.
type Route struct { //nolint:recvcheck //using for validation
	pickup      Waypoint
	destination Waypoint
	distanceKm  float64

	guard guard.ConstructorGuard
}

// NewRoute creates a validated Route. Both waypoints must be properly
// constructed and the distance cannot be negative.
func NewRoute(pickup Waypoint, destination Waypoint, distanceKm float64) (Route, error) {
	route := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setPickup(pickup),
		route.setDestination(destination),
		route.setDistanceKm(distanceKm),
	); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Validate checks that the Route was created through NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Pickup returns the waypoint where the hunter collects the item.
func (r Route) Pickup() Waypoint {
	return r.pickup
}

// Destination returns the waypoint where the item is delivered.
func (r Route) Destination() Waypoint {
	return r.destination
}

// DistanceKm returns the route length in kilometers, rounded to two decimals.
func (r Route) DistanceKm() float64 {
	return r.distanceKm
}

func (r *Route) setPickup(pickup Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	r.pickup = pickup
	return nil
}

func (r *Route) setDestination(destination Waypoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Route) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%g km is not a valid distance", distanceKm))
	}
	r.distanceKm = math.Round(distanceKm*100) / 100
	return nil
}
