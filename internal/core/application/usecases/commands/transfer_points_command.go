package commands

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrTransferPointsCommandIsNotConstructed = errors.New(
		"TransferPointsCommand must be created via NewTransferPointsCommand constructor",
	)
	ErrTransferToSameAccount = errs.NewValueIsInvalidError("toAccountID")
)

// TransferPointsCommand represents a direct points transfer between accounts.
type TransferPointsCommand struct { //nolint:recvcheck //using for validation
	fromAccountID kernel.UUID
	toAccountID   kernel.UUID
	amount        int

	guard guard.ConstructorGuard
}

// NewTransferPointsCommand creates a command to move points between accounts.
// The sender and recipient must differ and the amount must be positive.
func NewTransferPointsCommand(
	fromAccountID kernel.UUID,
	toAccountID kernel.UUID,
	amount int,
) (TransferPointsCommand, error) {
	command := TransferPointsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setFromAccountID(fromAccountID),
		command.setToAccountID(toAccountID),
		command.setAmount(amount),
	); err != nil {
		return TransferPointsCommand{}, err
	}

	if command.fromAccountID.IsEqual(command.toAccountID) {
		return TransferPointsCommand{}, ErrTransferToSameAccount
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransferPointsCommandIsNotConstructed if validation fails.
func (c TransferPointsCommand) Validate() error {
	return c.guard.Validate(ErrTransferPointsCommandIsNotConstructed)
}

// FromAccountID returns the sending account's identifier.
func (c TransferPointsCommand) FromAccountID() kernel.UUID {
	return c.fromAccountID
}

// ToAccountID returns the receiving account's identifier.
func (c TransferPointsCommand) ToAccountID() kernel.UUID {
	return c.toAccountID
}

// Amount returns the number of points to transfer.
func (c TransferPointsCommand) Amount() int {
	return c.amount
}

func (c *TransferPointsCommand) setFromAccountID(fromAccountID kernel.UUID) error {
	if err := fromAccountID.Validate(); err != nil {
		return err
	}

	c.fromAccountID = fromAccountID
	return nil
}

func (c *TransferPointsCommand) setToAccountID(toAccountID kernel.UUID) error {
	if err := toAccountID.Validate(); err != nil {
		return err
	}

	c.toAccountID = toAccountID
	return nil
}

func (c *TransferPointsCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, nil)
	}

	c.amount = amount
	return nil
}
