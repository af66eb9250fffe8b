// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves claimable orders for browsing hunters.
// Returns pending orders newest first with limit/offset pagination.
//
// Example:
//
//	query, err := NewGetAvailableOrdersQuery(20, 0)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetAvailableOrdersQuery struct { //nolint:recvcheck //using for validation
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the open order board.
// A non-positive limit falls back to the default page size; limits above the
// maximum and negative offsets are rejected.
func NewGetAvailableOrdersQuery(limit int, offset int) (GetAvailableOrdersQuery, error) {
	query := GetAvailableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setLimit(limit),
		query.setOffset(offset),
	); err != nil {
		return GetAvailableOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetAvailableOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q GetAvailableOrdersQuery) Offset() int {
	return q.offset
}

func (q *GetAvailableOrdersQuery) setLimit(limit int) error {
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

func (q *GetAvailableOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsOutOfRangeError("offset", offset, 0, nil)
	}

	q.offset = offset
	return nil
}

// OrderSummary is the read model for order listings. It carries the columns
// a board or history view renders without loading the full aggregate.
type OrderSummary struct {
	ID                 order.ID
	SenderID           kernel.UUID
	ItemName           string
	Category           string
	WeightKg           float64
	Fragile            bool
	PickupAddress      string
	DestinationAddress string
	DistanceKm         float64
	PointsCost         int
	TrustReward        int
	Status             string
	CreatedAt          time.Time
}
