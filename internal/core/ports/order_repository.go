// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"trustpoints/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Read models for listings (available, nearby, by participant) are served by
// query handlers directly and are not part of this contract.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// UpdateGuarded persists a lifecycle transition with a status precondition.
	// The write applies only if the stored order is still in expectedStatus;
	// when another writer got there first the update affects no rows and
	// order.ErrOrderNotAvailable is returned. This is what makes claiming
	// exactly-once under concurrency.
	UpdateGuarded(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error
}
