package commands

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to post a delivery order.
// Carries the sender, the package description and the route; the delivery
// cost and the hunter reward are derived by the Order aggregate.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(senderID, item, pickup, destination, "call on arrival")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to post order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     order.ID
	senderID    kernel.UUID
	item        order.Item
	pickup      order.Waypoint
	destination order.Waypoint
	notes       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new delivery order.
// A fresh order ID is minted by the constructor. The item and both waypoints
// must be constructed domain values.
func NewCreateOrderCommand(
	senderID kernel.UUID,
	item order.Item,
	pickup order.Waypoint,
	destination order.Waypoint,
	notes string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	command.orderID = order.NewID()
	command.notes = notes
	if err := errors.Join(
		command.setSenderID(senderID),
		command.setItem(item),
		command.setPickup(pickup),
		command.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() order.ID {
	return c.orderID
}

// SenderID returns the posting account's identifier.
func (c CreateOrderCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Item returns the package description.
func (c CreateOrderCommand) Item() order.Item {
	return c.item
}

// Pickup returns the pickup waypoint.
func (c CreateOrderCommand) Pickup() order.Waypoint {
	return c.pickup
}

// Destination returns the destination waypoint.
func (c CreateOrderCommand) Destination() order.Waypoint {
	return c.destination
}

// Notes returns the free-form delivery notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateOrderCommand) setItem(item order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.item = item
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup order.Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDestination(destination order.Waypoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
