package commands

import (
	"context"
	"errors"

	"trustpoints/internal/pkg/errs"
)

var (
	// ErrOrderNotFound is returned when a lifecycle command references an unknown order.
	ErrOrderNotFound = errors.New("order not found")
)

// ClaimOrderCommandHandler orchestrates exactly-once claiming of pending orders.
// The domain aggregate enforces the business guards (no self-claims, only
// PENDING orders) and the guarded repository write resolves races: of any
// number of concurrent claims on one order, exactly one commits and the rest
// receive order.ErrOrderNotAvailable.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory)
//	cmd, _ := NewClaimOrderCommand(orderID, hunterID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderNotAvailable):
//	    log.Println("somebody else got there first")
//	case err != nil:
//	    log.Printf("claim failed: %v", err)
//	}
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for order claiming operations.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	claimedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	expectedStatus := claimedOrder.Status()
	if err = claimedOrder.Claim(cmd.HunterID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateGuarded(ctx, claimedOrder, expectedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
