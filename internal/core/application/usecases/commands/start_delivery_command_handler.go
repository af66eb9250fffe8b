package commands

import (
	"context"
	"errors"

	"trustpoints/internal/pkg/errs"
)

// StartDeliveryCommandHandler moves a claimed order into transit.
// Only the hunter who claimed the order may pick it up; the guarded write
// protects against the order having moved on concurrently.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for pickup operations.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	pickedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	expectedStatus := pickedOrder.Status()
	if err = pickedOrder.StartTransit(cmd.HunterID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateGuarded(ctx, pickedOrder, expectedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
