// Package order provides domain entities and business logic for delivery order
// management in the TrustPoints system. It implements the Order aggregate root
// with lifecycle management, state transitions, and points pricing.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item, Route: value objects describing what is moved and where
//   - ID: the human-readable order identifier ("TP-<timestamp>-<random>")
//   - DeliveryCost / TrustReward: the pure pricing functions
//
// Key business rules:
//   - Orders must have a valid identifier, sender, item, and route
//   - Status follows a defined workflow:
//     Pending -> Claimed -> InTransit -> Delivered, with Pending and Claimed
//     orders cancellable by their sender
//   - A hunter cannot claim their own order; only the claiming hunter may
//     pick up and deliver
//   - Points cost and trust reward are fixed at creation and never change
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
