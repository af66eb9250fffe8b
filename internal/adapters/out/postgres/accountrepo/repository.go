package accountrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
// A duplicate email violates the unique index and surfaces as
// gorm.ErrDuplicatedKey.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
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

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by its normalized email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Credit atomically adds amount points to the account's balance.
func (r *GormAccountRepository) Credit(ctx context.Context, id kernel.UUID, amount int) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, account.ErrAmountIsNotPositive
	}

	var balance int
	result := r.db.WithContext(ctx).Raw(
		`UPDATE accounts
		    SET points = points + ?, updated_at = ?
		  WHERE id = ?
		 RETURNING points`,
		amount, time.Now().UTC(), id.Bytes(),
	).Scan(&balance)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("account", id.String())
	}

	return balance, nil
}

// Debit atomically removes amount points from the account's balance.
// The balance guard rides in the WHERE clause of a single UPDATE, so two
// concurrent debits can never jointly overdraw the account: the row is
// updated only while points still cover the amount.
func (r *GormAccountRepository) Debit(ctx context.Context, id kernel.UUID, amount int) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, account.ErrAmountIsNotPositive
	}

	var balance int
	result := r.db.WithContext(ctx).Raw(
		`UPDATE accounts
		    SET points = points - ?, updated_at = ?
		  WHERE id = ? AND points >= ?
		 RETURNING points`,
		amount, time.Now().UTC(), id.Bytes(), amount,
	).Scan(&balance)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		// Zero rows is either a missing account or an overdraw attempt.
		current, err := r.Get(ctx, id)
		if err != nil {
			return 0, err
		}
		return current.Points(), account.ErrInsufficientPoints
	}

	return balance, nil
}
