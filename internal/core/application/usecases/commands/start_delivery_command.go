package commands

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrStartDeliveryCommandIsNotConstructed = errors.New(
		"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
	)
)

// StartDeliveryCommand represents a hunter's confirmation of picking up the item.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  order.ID
	hunterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to move a claimed order into transit.
func NewStartDeliveryCommand(orderID order.ID, hunterID kernel.UUID) (StartDeliveryCommand, error) {
	command := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setHunterID(hunterID),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartDeliveryCommandIsNotConstructed if validation fails.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being picked up.
func (c StartDeliveryCommand) OrderID() order.ID {
	return c.orderID
}

// HunterID returns the acting account's identifier.
func (c StartDeliveryCommand) HunterID() kernel.UUID {
	return c.hunterID
}

func (c *StartDeliveryCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartDeliveryCommand) setHunterID(hunterID kernel.UUID) error {
	if err := hunterID.Validate(); err != nil {
		return err
	}

	c.hunterID = hunterID
	return nil
}
