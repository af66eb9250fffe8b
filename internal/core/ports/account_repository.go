package ports

import (
	"context"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates
// and the points ledger.
//
// Credit and Debit are single-statement conditional updates, not
// load-modify-store cycles. Concurrent ledger operations against the same
// account serialize on the row, and a debit can never observe a stale balance.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// A duplicate email violates the unique index and surfaces as a conflict.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account aggregate by its normalized email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// Credit atomically adds amount points to the account's balance and
	// returns the resulting balance.
	Credit(ctx context.Context, id kernel.UUID, amount int) (int, error)

	// Debit atomically removes amount points from the account's balance and
	// returns the resulting balance. The update applies only while the
	// balance covers the amount; an overdraw attempt against an existing
	// account returns account.ErrInsufficientPoints.
	Debit(ctx context.Context, id kernel.UUID, amount int) (int, error)
}
