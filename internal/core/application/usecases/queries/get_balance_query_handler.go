package queries

import (
	"context"
	"database/sql"
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBalanceQueryHandler retrieves an account's balance from the database.
// Uses a direct SQL query for optimal read performance in the CQRS pattern.
type GetBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetBalanceQueryHandler creates a handler for balance queries.
// Requires a GORM database connection for query execution.
func NewGetBalanceQueryHandler(db *gorm.DB) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{db: db}
}

// Handle executes the balance query.
// Returns errs.ObjectNotFoundError when the account does not exist.
func (h GetBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetBalanceQuery,
) (GetBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBalanceQueryResponse{}, err
	}

	var id uuid.UUID
	var response GetBalanceQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, full_name, points
		FROM accounts
		WHERE id = ?
	`, query.AccountID().Bytes()).Row()

	if err := row.Scan(&id, &response.FullName, &response.Points); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetBalanceQueryResponse{}, errs.NewObjectNotFoundError(
				"account", query.AccountID().String())
		}
		return GetBalanceQueryResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetBalanceQueryResponse{}, err
	}
	response.AccountID = accountID

	return response, nil
}
