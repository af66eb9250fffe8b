package queries

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

const (
	defaultRadiusKm = 10.0
	maxRadiusKm     = 50.0
)

var (
	ErrGetNearbyOrdersQueryIsNotConstructed = errors.New(
		"GetNearbyOrdersQuery must be created via NewGetNearbyOrdersQuery constructor",
	)
)

// GetNearbyOrdersQuery retrieves claimable orders whose pickup point lies
// within a radius of the hunter's position, closest first.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(106.8456, -6.2088)
//	query, err := NewGetNearbyOrdersQuery(origin, 5, 20, 0)
type GetNearbyOrdersQuery struct { //nolint:recvcheck //using for validation
	origin   kernel.GeoPoint
	radiusKm float64
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

// NewGetNearbyOrdersQuery creates a query for proximity order search.
// A non-positive radius falls back to the default; radii above the maximum
// are rejected. Pagination follows the order board rules.
func NewGetNearbyOrdersQuery(
	origin kernel.GeoPoint,
	radiusKm float64,
	limit int,
	offset int,
) (GetNearbyOrdersQuery, error) {
	query := GetNearbyOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrigin(origin),
		query.setRadiusKm(radiusKm),
		query.setLimit(limit),
		query.setOffset(offset),
	); err != nil {
		return GetNearbyOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearbyOrdersQueryIsNotConstructed if validation fails.
func (q GetNearbyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyOrdersQueryIsNotConstructed)
}

// Origin returns the search center.
func (q GetNearbyOrdersQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// RadiusKm returns the search radius in kilometers.
func (q GetNearbyOrdersQuery) RadiusKm() float64 {
	return q.radiusKm
}

// Limit returns the page size.
func (q GetNearbyOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q GetNearbyOrdersQuery) Offset() int {
	return q.offset
}

func (q *GetNearbyOrdersQuery) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	q.origin = origin
	return nil
}

func (q *GetNearbyOrdersQuery) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		q.radiusKm = defaultRadiusKm
		return nil
	}
	if radiusKm > maxRadiusKm {
		return errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, maxRadiusKm)
	}

	q.radiusKm = radiusKm
	return nil
}

func (q *GetNearbyOrdersQuery) setLimit(limit int) error {
	if limit <= 0 {
		q.limit = defaultPageLimit
		return nil
	}
	if limit > maxPageLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageLimit)
	}

	q.limit = limit
	return nil
}

func (q *GetNearbyOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsOutOfRangeError("offset", offset, 0, nil)
	}

	q.offset = offset
	return nil
}

// NearbyOrderSummary extends the listing read model with the great-circle
// distance from the search origin to the pickup point.
type NearbyOrderSummary struct {
	OrderSummary
	DistanceFromOriginKm float64
}
