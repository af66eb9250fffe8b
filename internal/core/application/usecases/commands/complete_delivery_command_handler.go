package commands

import (
	"context"
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/payout"
	"trustpoints/internal/pkg/errs"
)

// CompleteDeliveryResult reports the outcome of a delivery confirmation.
// The status transition always commits before the reward transfer runs, so
// a delivery can succeed while the reward is still pending settlement.
type CompleteDeliveryResult struct {
	rewardCredited bool
	hunterBalance  int
}

// RewardCredited reports whether the trust reward reached the hunter's
// balance immediately. False means a pending payout was recorded instead.
func (r CompleteDeliveryResult) RewardCredited() bool {
	return r.rewardCredited
}

// HunterBalance returns the hunter's balance after the credit. Zero when
// the reward was deferred to settlement.
func (r CompleteDeliveryResult) HunterBalance() int {
	return r.hunterBalance
}

// CompleteDeliveryCommandHandler handles the business logic for confirming
// deliveries. The DELIVERED transition commits on its own so a reward
// transfer hiccup never undoes a completed delivery. The credit is retried
// once; a second failure records a pending payout for the settlement job.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.RewardCredited() {
//	    log.Warn("reward deferred to settlement")
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// confirmation operations.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h *CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDeliveryCommand,
) (CompleteDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveredOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CompleteDeliveryResult{}, ErrOrderNotFound
		}
		return CompleteDeliveryResult{}, err
	}

	expectedStatus := deliveredOrder.Status()
	if err = deliveredOrder.CompleteDelivery(cmd.HunterID()); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = uow.OrderRepository().UpdateGuarded(ctx, deliveredOrder, expectedStatus); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	reward := deliveredOrder.TrustReward()

	balance, err := h.creditReward(ctx, cmd.HunterID(), reward)
	if err != nil {
		balance, err = h.creditReward(ctx, cmd.HunterID(), reward)
	}
	if err != nil {
		if payoutErr := h.recordPendingPayout(ctx, cmd, reward); payoutErr != nil {
			return CompleteDeliveryResult{}, payoutErr
		}
		return CompleteDeliveryResult{rewardCredited: false}, nil
	}

	return CompleteDeliveryResult{rewardCredited: true, hunterBalance: balance}, nil
}

func (h *CompleteDeliveryCommandHandler) creditReward(
	ctx context.Context,
	hunterID kernel.UUID,
	amount int,
) (int, error) {
	uow := h.uowFactory.Create()
	return uow.AccountRepository().Credit(ctx, hunterID, amount)
}

func (h *CompleteDeliveryCommandHandler) recordPendingPayout(
	ctx context.Context,
	cmd CompleteDeliveryCommand,
	amount int,
) error {
	pending, err := payout.NewRewardPayout(kernel.NewUUID(), cmd.OrderID(), cmd.HunterID(), amount)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return uow.PayoutRepository().Add(ctx, pending)
}
