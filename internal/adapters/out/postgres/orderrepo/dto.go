// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are keyed by their human-readable marketplace ID. The composite
// (status, created_at) index serves the available-orders listing, the
// participant indexes serve per-account history queries.
type OrderDTO struct {
	ID          string      `gorm:"type:varchar(26);primaryKey"`
	SenderID    uuid.UUID   `gorm:"type:uuid;index"`
	HunterID    *uuid.UUID  `gorm:"type:uuid;index"`
	Item        ItemDTO     `gorm:"embedded;embeddedPrefix:item_"`
	Pickup      WaypointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Destination WaypointDTO `gorm:"embedded;embeddedPrefix:destination_"`
	DistanceKm  float64
	Status      int `gorm:"index:idx_orders_status_created_at,priority:1"`
	PointsCost  int
	TrustReward int
	Notes       string
	CreatedAt   time.Time `gorm:"index:idx_orders_status_created_at,priority:2"`
	UpdatedAt   time.Time
	ClaimedAt   *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the embedded package description within the order table.
type ItemDTO struct {
	Name        string
	Category    int
	WeightKg    float64
	Fragile     bool
	PhotoURL    string
	Description string
}

// WaypointDTO represents an embedded route endpoint within the order table.
// Coordinates are WGS84, longitude before latitude.
type WaypointDTO struct {
	Address   string
	Longitude float64
	Latitude  float64
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var hunterID *uuid.UUID
	if id := aggregate.HunterID(); id != nil {
		raw := id.Bytes()
		hunterID = &raw
	}

	item := aggregate.Item()
	route := aggregate.Route()

	return OrderDTO{
		ID:       aggregate.ID().String(),
		SenderID: aggregate.SenderID().Bytes(),
		HunterID: hunterID,
		Item: ItemDTO{
			Name:        item.Name(),
			Category:    int(item.Category()),
			WeightKg:    item.WeightKg(),
			Fragile:     item.IsFragile(),
			PhotoURL:    item.PhotoURL(),
			Description: item.Description(),
		},
		Pickup:      waypointFromDomain(route.Pickup()),
		Destination: waypointFromDomain(route.Destination()),
		DistanceKm:  route.DistanceKm(),
		Status:      int(aggregate.Status()),
		PointsCost:  aggregate.PointsCost(),
		TrustReward: aggregate.TrustReward(),
		Notes:       aggregate.Notes(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		ClaimedAt:   aggregate.ClaimedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

func waypointFromDomain(waypoint order.Waypoint) WaypointDTO {
	return WaypointDTO{
		Address:   waypoint.Address(),
		Longitude: waypoint.Point().Longitude(),
		Latitude:  waypoint.Point().Latitude(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder so all domain
// invariants are revalidated on the way out of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var hunterID *kernel.UUID
	if dto.HunterID != nil {
		hID, hunterErr := kernel.UUIDFromBytes((*dto.HunterID)[:])
		if hunterErr != nil {
			return nil, hunterErr
		}

		hunterID = &hID
	}

	item, err := order.NewItem(
		dto.Item.Name,
		order.Category(dto.Item.Category),
		dto.Item.WeightKg,
		dto.Item.Fragile,
		dto.Item.PhotoURL,
		dto.Item.Description,
	)
	if err != nil {
		return nil, err
	}

	route, err := routeToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		senderID,
		hunterID,
		item,
		route,
		dto.Notes,
		order.Status(dto.Status),
		dto.PointsCost,
		dto.TrustReward,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ClaimedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
	)
}

func routeToDomain(dto OrderDTO) (order.Route, error) {
	pickup, err := waypointToDomain(dto.Pickup)
	if err != nil {
		return order.Route{}, err
	}

	destination, err := waypointToDomain(dto.Destination)
	if err != nil {
		return order.Route{}, err
	}

	return order.NewRoute(pickup, destination, dto.DistanceKm)
}

func waypointToDomain(dto WaypointDTO) (order.Waypoint, error) {
	point, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return order.Waypoint{}, err
	}

	return order.NewWaypoint(dto.Address, point)
}
