// Package accountrepo provides data transfer objects and mapping functions for
// account persistence, including the atomic points ledger operations.
package accountrepo

import (
	"time"

	"github.com/google/uuid"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting account aggregates.
// The unique email index backs registration conflicts, the points check
// constraint backs the non-negative balance invariant at the storage level.
type AccountDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	Points    int    `gorm:"check:points >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:        aggregate.ID().Bytes(),
		FullName:  aggregate.FullName(),
		Email:     aggregate.Email(),
		Points:    aggregate.Points(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.FullName, dto.Email, dto.Points, dto.CreatedAt, dto.UpdatedAt)
}
