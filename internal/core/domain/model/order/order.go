package order

import (
	"errors"
	"fmt"
	"time"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCannotClaimOwnOrder is returned when a sender attempts to claim
	// their own order.
	ErrCannotClaimOwnOrder = errors.New("sender cannot claim their own order")

	// ErrNotOrderHunter is returned when someone other than the claiming
	// hunter attempts a pickup or delivery transition.
	ErrNotOrderHunter = errors.New("actor is not the hunter of this order")

	// ErrNotOrderSender is returned when someone other than the sender
	// attempts to cancel an order.
	ErrNotOrderSender = errors.New("actor is not the sender of this order")

	// ErrOrderNotAvailable is reported when a guarded transition matched no
	// row because another actor already moved the order out of the expected
	// status. The losing side of a claim race receives this error.
	ErrOrderNotAvailable = errors.New("order is not available in the expected status")
)

// Order is the aggregate root for a peer-to-peer delivery. It carries the
// item, the route, the points economics fixed at creation, and the lifecycle
// state machine.
//
// Invariants:
//   - identifier, sender, item and route are set at creation and immutable
//   - pointsCost and trustReward are computed once at creation and never change
//   - hunterID is nil exactly until the order is claimed
//   - each lifecycle timestamp (claimedAt, pickedUpAt, deliveredAt) is set
//     exactly once, in order, and never reset
//   - a failed transition guard leaves the aggregate unchanged
//
// The struct uses private fields to ensure encapsulation; mutate only through
// the lifecycle methods.
type Order struct {
	id       ID
	senderID kernel.UUID
	hunterID *kernel.UUID

	item  Item
	route Route
	notes string

	status      Status
	pointsCost  int
	trustReward int

	createdAt   time.Time
	updatedAt   time.Time
	claimedAt   *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a Pending order for the given sender. The delivery cost
// and the hunter reward are derived from the route distance and the item via
// DeliveryCost and TrustReward, and are immutable afterwards.
//
// The caller is responsible for debiting the sender's points; NewOrder only
// builds the aggregate.
func NewOrder(id ID, senderID kernel.UUID, item Item, route Route, notes string) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		senderID.Validate(),
		item.Validate(),
		route.Validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		senderID:      senderID,
		item:          item,
		route:         route,
		notes:         notes,
		status:        Pending,
		pointsCost:    DeliveryCost(route.DistanceKm(), item.WeightKg(), item.IsFragile()),
		trustReward:   TrustReward(route.DistanceKm(), item.IsFragile()),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It revalidates the
// value objects and the status/hunter consistency but does not recompute the
// points economics: cost and reward are restored exactly as stored.
func RestoreOrder(
	id ID,
	senderID kernel.UUID,
	hunterID *kernel.UUID,
	item Item,
	route Route,
	notes string,
	status Status,
	pointsCost int,
	trustReward int,
	createdAt time.Time,
	updatedAt time.Time,
	claimedAt *time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		senderID.Validate(),
		item.Validate(),
		route.Validate(),
		status.Validate(),
		status.ValidateCanHaveHunter(hunterID != nil),
	); err != nil {
		return nil, err
	}

	if hunterID != nil {
		if err := hunterID.Validate(); err != nil {
			return nil, err
		}
	}

	if pointsCost < 0 || trustReward < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("points",
			fmt.Errorf("cost %d / reward %d cannot be negative", pointsCost, trustReward))
	}

	return &Order{
		id:            id,
		senderID:      senderID,
		hunterID:      hunterID,
		item:          item,
		route:         route,
		notes:         notes,
		status:        status,
		pointsCost:    pointsCost,
		trustReward:   trustReward,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		claimedAt:     claimedAt,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() ID {
	return o.id
}

// SenderID returns the account that posted and paid for the order.
func (o *Order) SenderID() kernel.UUID {
	return o.senderID
}

// HunterID returns the claiming hunter's account, or nil while Pending.
func (o *Order) HunterID() *kernel.UUID {
	return o.hunterID
}

// Item returns the package description.
func (o *Order) Item() Item {
	return o.item
}

// Route returns the pickup/destination waypoints and distance.
func (o *Order) Route() Route {
	return o.route
}

// Notes returns the optional free-text delivery notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PointsCost returns the points debited from the sender at creation.
func (o *Order) PointsCost() int {
	return o.pointsCost
}

// TrustReward returns the points credited to the hunter at delivery.
func (o *Order) TrustReward() int {
	return o.trustReward
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ClaimedAt returns when the order was claimed, or nil.
func (o *Order) ClaimedAt() *time.Time {
	return o.claimedAt
}

// PickedUpAt returns when the hunter picked the item up, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the delivery was completed, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Claim assigns the order to a hunter (Pending -> Claimed).
//
// Guards:
//   - the hunter ID must be valid
//   - the hunter must not be the order's sender (ErrCannotClaimOwnOrder)
//   - the order must still be Pending
//
// On success the hunter is recorded and claimedAt is set. Note that this
// in-memory guard is re-checked by the repository's conditional write, which
// is what makes a claim exactly-once under concurrency.
func (o *Order) Claim(hunterID kernel.UUID) error {
	if err := hunterID.Validate(); err != nil {
		return err
	}

	if hunterID.IsEqual(o.senderID) {
		return ErrCannotClaimOwnOrder
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.hunterID = &hunterID
	o.claimedAt = &now
	o.updatedAt = now
	return nil
}

// StartTransit records the pickup (Claimed -> InTransit).
// Only the hunter who claimed the order may pick it up (ErrNotOrderHunter).
func (o *Order) StartTransit(hunterID kernel.UUID) error {
	if err := hunterID.Validate(); err != nil {
		return err
	}

	if o.hunterID == nil || !o.hunterID.IsEqual(hunterID) {
		return ErrNotOrderHunter
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.pickedUpAt = &now
	o.updatedAt = now
	return nil
}

// CompleteDelivery records the delivery (InTransit -> Delivered).
// Only the hunter who claimed the order may complete it (ErrNotOrderHunter).
// Crediting the trust reward to the hunter is the caller's responsibility and
// happens outside this aggregate.
func (o *Order) CompleteDelivery(hunterID kernel.UUID) error {
	if err := hunterID.Validate(); err != nil {
		return err
	}

	if o.hunterID == nil || !o.hunterID.IsEqual(hunterID) {
		return ErrNotOrderHunter
	}

	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	o.updatedAt = now
	return nil
}

// Cancel withdraws the order ({Pending,Claimed} -> Cancelled).
// Only the sender may cancel (ErrNotOrderSender). The points debited at
// creation are not refunded here; refund policy belongs to the caller.
func (o *Order) Cancel(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	if !o.senderID.IsEqual(senderID) {
		return ErrNotOrderSender
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}
