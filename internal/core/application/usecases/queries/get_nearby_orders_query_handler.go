package queries

import (
	"context"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNearbyOrdersQueryHandler retrieves pending orders around a point. The
// great-circle distance is computed in SQL with the haversine formula so
// filtering and ordering happen in one pass over the status index.
type GetNearbyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyOrdersQueryHandler creates a handler for proximity queries.
// Requires a GORM database connection for query execution.
func NewGetNearbyOrdersQueryHandler(db *gorm.DB) GetNearbyOrdersQueryHandler {
	return GetNearbyOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve pending orders within the radius,
// ordered by ascending distance from the origin.
func (h GetNearbyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyOrdersQuery,
) ([]NearbyOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// 6371 is the mean Earth radius in kilometers.
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
			created_at,
			pickup_longitude,
			pickup_latitude
		FROM (
			SELECT *,
				2 * 6371 * asin(sqrt(
					pow(sin(radians(pickup_latitude - ?) / 2), 2) +
					cos(radians(?)) * cos(radians(pickup_latitude)) *
					pow(sin(radians(pickup_longitude - ?) / 2), 2)
				)) AS origin_distance_km
			FROM orders
			WHERE status = ?
		) nearby
		WHERE origin_distance_km <= ?
		ORDER BY origin_distance_km ASC
		LIMIT ? OFFSET ?
	`,
		query.Origin().Latitude(),
		query.Origin().Latitude(),
		query.Origin().Longitude(),
		int(order.Pending),
		query.RadiusKm(),
		query.Limit(),
		query.Offset(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]NearbyOrderSummary, 0)

	for rows.Next() {
		var summary NearbyOrderSummary
		var rawID string
		var senderID uuid.UUID
		var category int
		var status int
		var pickupLongitude, pickupLatitude float64

		err = rows.Scan(
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
			&pickupLongitude,
			&pickupLatitude,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := order.IDFromString(rawID)
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		sender, idErr := kernel.UUIDFromBytes(senderID[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.SenderID = sender

		summary.Category = order.Category(category).String()
		summary.Status = order.Status(status).String()

		pickupPoint, pointErr := kernel.NewGeoPoint(pickupLongitude, pickupLatitude)
		if pointErr != nil {
			return nil, pointErr
		}

		distance, distErr := query.Origin().DistanceKm(pickupPoint)
		if distErr != nil {
			return nil, distErr
		}
		summary.DistanceFromOriginKm = distance

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
