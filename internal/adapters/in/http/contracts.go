package http

import (
	"strconv"
	"time"

	"trustpoints/internal/core/application/usecases/commands"
	"trustpoints/internal/core/application/usecases/queries"
	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape for all failure responses.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterAccountRequest is the body for POST /accounts.
type RegisterAccountRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// RegisterAccountResponse returns the minted account identifier.
type RegisterAccountResponse struct {
	AccountID string `json:"account_id"`
}

// BalanceResponse is the wire shape of a balance read.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	FullName  string `json:"full_name"`
	Points    int    `json:"points"`
}

// AmountRequest is the body for earn and redeem operations.
type AmountRequest struct {
	Amount int `json:"amount"`
}

// TransferRequest is the body for POST /accounts/:id/transfer.
type TransferRequest struct {
	ToAccountID string `json:"to_account_id"`
	Amount      int    `json:"amount"`
}

// LedgerResultResponse is the wire shape of a ledger operation outcome.
type LedgerResultResponse struct {
	Applied bool   `json:"applied"`
	Amount  int    `json:"amount"`
	Balance int    `json:"balance"`
	Failure string `json:"failure,omitempty"`
}

// ItemRequest describes the item being shipped.
type ItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	WeightKg    float64 `json:"weight_kg"`
	Fragile     bool    `json:"fragile"`
	PhotoURL    string  `json:"photo_url"`
	Description string  `json:"description"`
}

// WaypointRequest describes a pickup or destination point.
type WaypointRequest struct {
	Address   string  `json:"address"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// CreateOrderRequest is the body for POST /orders.
type CreateOrderRequest struct {
	SenderID    string          `json:"sender_id"`
	Item        ItemRequest     `json:"item"`
	Pickup      WaypointRequest `json:"pickup"`
	Destination WaypointRequest `json:"destination"`
	Notes       string          `json:"notes"`
}

// toCommand builds the domain command from the wire request, validating
// every field through the value object constructors.
func (r CreateOrderRequest) toCommand() (commands.CreateOrderCommand, error) {
	senderID, err := kernel.UUIDFromString(r.SenderID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	category, err := order.CategoryFromString(r.Item.Category)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	item, err := order.NewItem(
		r.Item.Name, category, r.Item.WeightKg, r.Item.Fragile,
		r.Item.PhotoURL, r.Item.Description)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	pickup, err := r.Pickup.toWaypoint()
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	destination, err := r.Destination.toWaypoint()
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(senderID, item, pickup, destination, r.Notes)
}

func (r WaypointRequest) toWaypoint() (order.Waypoint, error) {
	point, err := kernel.NewGeoPoint(r.Longitude, r.Latitude)
	if err != nil {
		return order.Waypoint{}, err
	}

	return order.NewWaypoint(r.Address, point)
}

// CreateOrderResponse returns the minted order identifier.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// LifecycleRequest is the body for claim, start, complete and cancel.
// The actor is the hunter for claim/start/complete and the sender for cancel.
type LifecycleRequest struct {
	ActorID string `json:"actor_id"`
}

// CompleteDeliveryResponse reports the delivery confirmation outcome.
type CompleteDeliveryResponse struct {
	RewardCredited bool `json:"reward_credited"`
	HunterBalance  int  `json:"hunter_balance,omitempty"`
}

// OrderSummaryResponse is the wire shape of an order listing entry.
type OrderSummaryResponse struct {
	OrderID            string    `json:"order_id"`
	SenderID           string    `json:"sender_id"`
	ItemName           string    `json:"item_name"`
	Category           string    `json:"category"`
	WeightKg           float64   `json:"weight_kg"`
	Fragile            bool      `json:"fragile"`
	PickupAddress      string    `json:"pickup_address"`
	DestinationAddress string    `json:"destination_address"`
	DistanceKm         float64   `json:"distance_km"`
	PointsCost         int       `json:"points_cost"`
	TrustReward        int       `json:"trust_reward"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// NearbyOrderResponse extends a listing entry with the distance from the
// search origin.
type NearbyOrderResponse struct {
	OrderSummaryResponse
	DistanceFromOriginKm float64 `json:"distance_from_origin_km"`
}

func toOrderSummaryResponse(summary queries.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		OrderID:            summary.ID.String(),
		SenderID:           summary.SenderID.String(),
		ItemName:           summary.ItemName,
		Category:           summary.Category,
		WeightKg:           summary.WeightKg,
		Fragile:            summary.Fragile,
		PickupAddress:      summary.PickupAddress,
		DestinationAddress: summary.DestinationAddress,
		DistanceKm:         summary.DistanceKm,
		PointsCost:         summary.PointsCost,
		TrustReward:        summary.TrustReward,
		Status:             summary.Status,
		CreatedAt:          summary.CreatedAt,
	}
}

func toOrderSummaryResponses(summaries []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderSummaryResponse(summary)
	}
	return response
}

// parseLifecycleRequest extracts the order id from the path and the acting
// account from the body.
func parseLifecycleRequest(ctx echo.Context) (order.ID, kernel.UUID, error) {
	orderID, err := order.IDFromString(ctx.Param("id"))
	if err != nil {
		return order.ID{}, kernel.UUID{}, err
	}

	var req LifecycleRequest
	if err = ctx.Bind(&req); err != nil {
		return order.ID{}, kernel.UUID{}, err
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return order.ID{}, kernel.UUID{}, err
	}

	return orderID, actorID, nil
}

// parsePagination reads optional limit/offset query parameters. Absent
// values come back as zero and fall to the query defaults.
func parsePagination(ctx echo.Context) (int, int, error) {
	limit, err := parseIntParam(ctx, "limit")
	if err != nil {
		return 0, 0, err
	}

	offset, err := parseIntParam(ctx, "offset")
	if err != nil {
		return 0, 0, err
	}

	return limit, offset, nil
}

func parseIntParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseFloatParam(ctx echo.Context, name string) (float64, error) {
	return strconv.ParseFloat(ctx.QueryParam(name), 64)
}
