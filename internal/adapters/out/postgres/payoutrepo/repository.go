package payoutrepo

import (
	"context"

	"gorm.io/gorm"

	"trustpoints/internal/core/domain/model/payout"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormPayoutRepository creates a new GORM reward payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reward payout to the database.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.RewardPayout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing reward payout to the database.
func (r *GormPayoutRepository) Update(ctx context.Context, aggregate *payout.RewardPayout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RewardPayoutDTO{}).
		Where("id = ?", dto.ID).
		Select("Attempts", "Settled", "SettledAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// GetAllPending retrieves unsettled payouts, oldest first.
func (r *GormPayoutRepository) GetAllPending(ctx context.Context) ([]*payout.RewardPayout, error) {
	var dtos []RewardPayoutDTO
	err := r.db.WithContext(ctx).
		Where("settled = ?", false).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	payouts := make([]*payout.RewardPayout, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}

	return payouts, nil
}
