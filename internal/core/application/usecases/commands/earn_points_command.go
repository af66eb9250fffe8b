package commands

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrEarnPointsCommandIsNotConstructed = errors.New(
		"EarnPointsCommand must be created via NewEarnPointsCommand constructor",
	)
)

// EarnPointsCommand represents an account acquiring points from outside the
// system, for example a top-up or promotional grant.
type EarnPointsCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	amount    int

	guard guard.ConstructorGuard
}

// NewEarnPointsCommand creates a command to credit points to an account.
func NewEarnPointsCommand(accountID kernel.UUID, amount int) (EarnPointsCommand, error) {
	command := EarnPointsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setAmount(amount),
	); err != nil {
		return EarnPointsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEarnPointsCommandIsNotConstructed if validation fails.
func (c EarnPointsCommand) Validate() error {
	return c.guard.Validate(ErrEarnPointsCommandIsNotConstructed)
}

// AccountID returns the identifier of the account to credit.
func (c EarnPointsCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Amount returns the number of points to credit.
func (c EarnPointsCommand) Amount() int {
	return c.amount
}

func (c *EarnPointsCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *EarnPointsCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}

	c.amount = amount
	return nil
}
