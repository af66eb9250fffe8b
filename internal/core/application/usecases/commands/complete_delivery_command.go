package commands

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand represents a hunter's confirmation of delivery.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  order.ID
	hunterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete an in-transit order.
func NewCompleteDeliveryCommand(orderID order.ID, hunterID kernel.UUID) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setHunterID(hunterID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c CompleteDeliveryCommand) OrderID() order.ID {
	return c.orderID
}

// HunterID returns the acting account's identifier.
func (c CompleteDeliveryCommand) HunterID() kernel.UUID {
	return c.hunterID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setHunterID(hunterID kernel.UUID) error {
	if err := hunterID.Validate(); err != nil {
		return err
	}

	c.hunterID = hunterID
	return nil
}
