package commands

import (
	"context"

	"trustpoints/internal/core/domain/model/payout"
)

// SettleRewardsCommandHandler orchestrates settlement of pending reward
// payouts. Each payout settles in its own transaction so one problem
// account never blocks the rest of the queue. A failed credit bumps the
// payout's attempt counter and moves on.
//
// Example:
//
//	handler := NewSettleRewardsCommandHandler(uowFactory)
//	cmd := NewSettleRewardsCommand()
//
//	// This would typically be called periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("reward settlement failed: %w", err)
//	}
type SettleRewardsCommandHandler struct {
	uowFactory UoWFactory
}

// NewSettleRewardsCommandHandler creates a handler for payout settlement
// operations. Requires a UoWFactory for coordinating updates across the
// ledger and payout repositories.
func NewSettleRewardsCommandHandler(uowFactory UoWFactory) SettleRewardsCommandHandler {
	return SettleRewardsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command. Retrieves all pending payouts
// and attempts to credit each hunter, marking the payout settled on
// success.
func (h *SettleRewardsCommandHandler) Handle(ctx context.Context, cmd SettleRewardsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.uowFactory.Create().PayoutRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}

	for _, p := range pending {
		if err = h.settleOne(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

// settleOne attempts to credit a single payout within its own transaction.
// A credit failure is recorded on the payout and is not propagated.
func (h *SettleRewardsCommandHandler) settleOne(ctx context.Context, p *payout.RewardPayout) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.AccountRepository().Credit(ctx, p.HunterID(), p.Amount()); err != nil {
		return h.recordFailedAttempt(ctx, p)
	}

	if err := p.MarkSettled(); err != nil {
		return err
	}

	if err := uow.PayoutRepository().Update(ctx, p); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// recordFailedAttempt bumps the attempt counter outside the settlement
// transaction so the count survives the rollback.
func (h *SettleRewardsCommandHandler) recordFailedAttempt(ctx context.Context, p *payout.RewardPayout) error {
	p.RecordAttempt()

	uow := h.uowFactory.Create()
	return uow.PayoutRepository().Update(ctx, p)
}
