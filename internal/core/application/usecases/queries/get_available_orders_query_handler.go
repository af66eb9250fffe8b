package queries

import (
	"context"
	"database/sql"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler retrieves the open order board from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern; the listing is a snapshot and claiming re-checks status
// atomically.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for order board queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve pending orders, newest first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, int(order.Pending), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries maps listing rows into the shared read model. The
// column order must match the SELECT lists of the order listing queries.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		summary, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var summary OrderSummary
	var rawID string
	var senderID uuid.UUID
	var category int
	var status int

	err := rows.Scan(
		&rawID,
		&senderID,
		&summary.ItemName,
		&category,
		&summary.WeightKg,
		&summary.Fragile,
		&summary.PickupAddress,
		&summary.DestinationAddress,
		&summary.DistanceKm,
		&summary.PointsCost,
		&summary.TrustReward,
		&status,
		&summary.CreatedAt,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	orderID, err := order.IDFromString(rawID)
	if err != nil {
		return OrderSummary{}, err
	}
	summary.ID = orderID

	sender, err := kernel.UUIDFromBytes(senderID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	summary.SenderID = sender

	summary.Category = order.Category(category).String()
	summary.Status = order.Status(status).String()

	return summary, nil
}
