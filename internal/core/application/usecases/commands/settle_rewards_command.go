package commands

import (
	"errors"

	"trustpoints/internal/pkg/guard"
)

// SettleRewardsCommand triggers settlement of all pending reward payouts.
// This batch operation retries reward credits that failed at delivery time.
//
// Example:
//
//	cmd := NewSettleRewardsCommand()
//	handler := NewSettleRewardsCommandHandler(uowFactory)
//
//	// Run periodically to drain the pending payout queue
//	ticker := time.NewTicker(time.Minute)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Reward settlement failed: %v", err)
//	    }
//	}
type SettleRewardsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrSettleRewardsCommandIsNotConstructed = errors.New(
		"SettleRewardsCommand must be created via NewSettleRewardsCommand constructor",
	)
)

// NewSettleRewardsCommand creates a command to trigger payout settlement.
// This is a parameterless command that processes all pending payouts.
func NewSettleRewardsCommand() SettleRewardsCommand {
	command := SettleRewardsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSettleRewardsCommandIsNotConstructed if validation fails.
func (c *SettleRewardsCommand) Validate() error {
	return c.guard.Validate(ErrSettleRewardsCommandIsNotConstructed)
}
