package commands

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
)

// ClaimOrderCommand represents a hunter's request to claim a pending order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  order.ID
	hunterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim an order for delivery.
func NewClaimOrderCommand(orderID order.ID, hunterID kernel.UUID) (ClaimOrderCommand, error) {
	command := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setHunterID(hunterID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimOrderCommandIsNotConstructed if validation fails.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to claim.
func (c ClaimOrderCommand) OrderID() order.ID {
	return c.orderID
}

// HunterID returns the claiming account's identifier.
func (c ClaimOrderCommand) HunterID() kernel.UUID {
	return c.hunterID
}

func (c *ClaimOrderCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setHunterID(hunterID kernel.UUID) error {
	if err := hunterID.Validate(); err != nil {
		return err
	}

	c.hunterID = hunterID
	return nil
}
