package commands

import (
	"errors"
	"strings"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrFullNameIsRequired = errors.New("fullName is required")
	ErrEmailIsRequired    = errors.New("email is required")
)

// RegisterAccountCommand represents a request to register a marketplace participant.
// A fresh account ID is minted by the constructor; the caller supplies name and email.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	fullName  string
	email     string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that name and email are not empty; full email validation happens
// in the Account aggregate.
func NewRegisterAccountCommand(fullName string, email string) (RegisterAccountCommand, error) {
	command := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	command.accountID = kernel.NewUUID()
	if err := errors.Join(
		command.setFullName(fullName),
		command.setEmail(email),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterAccountCommandIsNotConstructed if validation fails.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier minted for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// FullName returns the participant's display name.
func (c RegisterAccountCommand) FullName() string {
	return c.fullName
}

// Email returns the participant's email address.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

func (c *RegisterAccountCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
