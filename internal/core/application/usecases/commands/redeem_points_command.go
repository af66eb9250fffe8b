package commands

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrRedeemPointsCommandIsNotConstructed = errors.New(
		"RedeemPointsCommand must be created via NewRedeemPointsCommand constructor",
	)
)

// RedeemPointsCommand represents an account spending points outside the
// order flow, for example exchanging them for an external benefit.
type RedeemPointsCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	amount    int

	guard guard.ConstructorGuard
}

// NewRedeemPointsCommand creates a command to debit points from an account.
func NewRedeemPointsCommand(accountID kernel.UUID, amount int) (RedeemPointsCommand, error) {
	command := RedeemPointsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setAmount(amount),
	); err != nil {
		return RedeemPointsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRedeemPointsCommandIsNotConstructed if validation fails.
func (c RedeemPointsCommand) Validate() error {
	return c.guard.Validate(ErrRedeemPointsCommandIsNotConstructed)
}

// AccountID returns the identifier of the account to debit.
func (c RedeemPointsCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Amount returns the number of points to debit.
func (c RedeemPointsCommand) Amount() int {
	return c.amount
}

func (c *RedeemPointsCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RedeemPointsCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}

	c.amount = amount
	return nil
}
