// Package payoutrepo provides data transfer objects and mapping functions for
// pending reward payout persistence.
package payoutrepo

import (
	"time"

	"github.com/google/uuid"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/core/domain/model/payout"
)

// RewardPayoutDTO represents the database structure for pending reward payouts.
// The partial-looking settled index keeps the settlement job's scan cheap.
type RewardPayoutDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   string    `gorm:"type:varchar(26);index"`
	HunterID  uuid.UUID `gorm:"type:uuid;index"`
	Amount    int
	Attempts  int
	Settled   bool `gorm:"index"`
	CreatedAt time.Time
	SettledAt *time.Time
}

// TableName specifies the database table name for reward payout entities.
func (RewardPayoutDTO) TableName() string {
	return "reward_payouts"
}

// fromDomain converts a payout domain entity to its database representation.
func fromDomain(aggregate *payout.RewardPayout) RewardPayoutDTO {
	return RewardPayoutDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().String(),
		HunterID:  aggregate.HunterID().Bytes(),
		Amount:    aggregate.Amount(),
		Attempts:  aggregate.Attempts(),
		Settled:   aggregate.IsSettled(),
		CreatedAt: aggregate.CreatedAt(),
		SettledAt: aggregate.SettledAt(),
	}
}

// toDomain converts a database DTO to a payout domain entity.
func toDomain(dto RewardPayoutDTO) (*payout.RewardPayout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := order.IDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	hunterID, err := kernel.UUIDFromBytes(dto.HunterID[:])
	if err != nil {
		return nil, err
	}

	return payout.RestoreRewardPayout(
		id, orderID, hunterID,
		dto.Amount, dto.Attempts, dto.Settled,
		dto.CreatedAt, dto.SettledAt,
	)
}
