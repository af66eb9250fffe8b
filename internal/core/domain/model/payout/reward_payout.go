package payout

import (
	"errors"
	"time"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

// Domain errors for reward payout operations.
var (
	// ErrRewardPayoutIsNotConstructed is returned when using an improperly initialized RewardPayout.
	ErrRewardPayoutIsNotConstructed = errors.New("RewardPayout must be created via NewRewardPayout constructor")
	// ErrRewardPayoutAlreadySettled is returned when settling a payout twice.
	ErrRewardPayoutAlreadySettled = errors.New("reward payout is already settled")
)

// RewardPayout is a pending trust reward awaiting settlement.
//
// Business rules:
//   - Amount must be positive
//   - Attempts counts credit attempts, including the failed one at delivery time
//   - A payout is settled at most once
type RewardPayout struct {
	id        kernel.UUID
	orderID   order.ID
	hunterID  kernel.UUID
	amount    int
	attempts  int
	settled   bool
	createdAt time.Time
	settledAt *time.Time
	guard     guard.ConstructorGuard
}

// NewRewardPayout records a reward that failed to credit at delivery time.
// The payout starts unsettled with a single recorded attempt.
func NewRewardPayout(id kernel.UUID, orderID order.ID, hunterID kernel.UUID, amount int) (*RewardPayout, error) {
	payout := &RewardPayout{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payout.setID(id),
		payout.setOrderID(orderID),
		payout.setHunterID(hunterID),
		payout.setAmount(amount),
	); err != nil {
		return nil, err
	}

	payout.attempts = 1
	payout.createdAt = time.Now().UTC()
	return payout, nil
}

// RestoreRewardPayout reconstructs a RewardPayout from persistent storage.
func RestoreRewardPayout(
	id kernel.UUID,
	orderID order.ID,
	hunterID kernel.UUID,
	amount int,
	attempts int,
	settled bool,
	createdAt time.Time,
	settledAt *time.Time,
) (*RewardPayout, error) {
	payout := &RewardPayout{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payout.setID(id),
		payout.setOrderID(orderID),
		payout.setHunterID(hunterID),
		payout.setAmount(amount),
	); err != nil {
		return nil, err
	}

	if attempts < 0 {
		return nil, errs.NewValueIsOutOfRangeError("attempts", attempts, 0, nil)
	}

	payout.attempts = attempts
	payout.settled = settled
	payout.createdAt = createdAt
	payout.settledAt = settledAt
	return payout, nil
}

// Validate checks if the RewardPayout was properly constructed.
func (p *RewardPayout) Validate() error {
	if p == nil {
		return ErrRewardPayoutIsNotConstructed
	}
	return p.guard.Validate(ErrRewardPayoutIsNotConstructed)
}

// ID returns the unique identifier of the payout.
func (p *RewardPayout) ID() kernel.UUID {
	return p.id
}

// OrderID returns the delivered order this payout belongs to.
func (p *RewardPayout) OrderID() order.ID {
	return p.orderID
}

// HunterID returns the hunter owed the reward.
func (p *RewardPayout) HunterID() kernel.UUID {
	return p.hunterID
}

// Amount returns the reward amount in points.
func (p *RewardPayout) Amount() int {
	return p.amount
}

// Attempts returns how many credit attempts have been made.
func (p *RewardPayout) Attempts() int {
	return p.attempts
}

// IsSettled reports whether the reward has been credited.
func (p *RewardPayout) IsSettled() bool {
	return p.settled
}

// CreatedAt returns when the payout was recorded (UTC).
func (p *RewardPayout) CreatedAt() time.Time {
	return p.createdAt
}

// SettledAt returns when the payout was settled, or nil while pending.
func (p *RewardPayout) SettledAt() *time.Time {
	return p.settledAt
}

// RecordAttempt increments the attempt counter after a failed credit.
func (p *RewardPayout) RecordAttempt() {
	p.attempts++
}

// MarkSettled records a successful credit of the reward.
// Settling an already settled payout fails with ErrRewardPayoutAlreadySettled.
func (p *RewardPayout) MarkSettled() error {
	if p.settled {
		return ErrRewardPayoutAlreadySettled
	}

	now := time.Now().UTC()
	p.settled = true
	p.settledAt = &now
	return nil
}

func (p *RewardPayout) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *RewardPayout) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	p.orderID = orderID
	return nil
}

func (p *RewardPayout) setHunterID(hunterID kernel.UUID) error {
	if err := hunterID.Validate(); err != nil {
		return err
	}

	p.hunterID = hunterID
	return nil
}

func (p *RewardPayout) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}

	p.amount = amount
	return nil
}
