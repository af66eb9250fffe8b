package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAccountOrdersQueryHandler retrieves an account's order history from
// the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetAccountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetAccountOrdersQueryHandler(db *gorm.DB) GetAccountOrdersQueryHandler {
	return GetAccountOrdersQueryHandler{db: db}
}

// Handle executes the history query for one marketplace side, newest first.
func (h GetAccountOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAccountOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roleColumn := "sender_id"
	if query.Role() == RoleHunter {
		roleColumn = "hunter_id"
	}

	sql := `
		SELECT
			id,
			sender_id,
			item_name,
			item_category,
			item_weight_kg,
			item_fragile,
			pickup_address,
			destination_address,
			distance_km,
			points_cost,
			trust_reward,
			status,
			created_at
		FROM orders
		WHERE ` + roleColumn + ` = ?`

	args := []any{query.AccountID().Bytes()}

	if query.HasStatusFilter() {
		sql += ` AND status = ?`
		args = append(args, int(query.StatusFilter()))
	}

	sql += `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
