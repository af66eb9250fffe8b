package commands

import (
	"context"

	"trustpoints/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for posting orders.
// The route distance is derived from the waypoint coordinates, the order is
// priced by the aggregate, and the sender is debited the delivery cost and
// the order inserted within one transaction. A sender who cannot cover the
// cost gets account.ErrInsufficientPoints and no order is created.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(senderID, item, pickup, destination, "")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order posting failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order posting operations.
// Requires a UoWFactory since posting spans the ledger and the order store.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order posting command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	distanceKm, err := cmd.Pickup().Point().DistanceKm(cmd.Destination().Point())
	if err != nil {
		return err
	}

	route, err := order.NewRoute(cmd.Pickup(), cmd.Destination(), distanceKm)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.SenderID(), cmd.Item(), route, cmd.Notes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.AccountRepository().Debit(ctx, cmd.SenderID(), newOrder.PointsCost()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
