package ports

import (
	"context"

	"trustpoints/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for pending reward payouts.
type PayoutRepository interface {
	// Add persists a new reward payout record.
	Add(ctx context.Context, aggregate *payout.RewardPayout) error

	// Update persists changes to an existing payout (attempt counter,
	// settlement state).
	Update(ctx context.Context, aggregate *payout.RewardPayout) error

	// GetAllPending retrieves payouts that have not been settled yet,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*payout.RewardPayout, error)
}
