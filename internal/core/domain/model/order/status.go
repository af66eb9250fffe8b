package order

import (
	"fmt"

	"trustpoints/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Claimed ──> InTransit ──> Delivered
//	   │           │
//	   └───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no further transitions are allowed.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Pending orders are visible to hunters and waiting to be claimed.
	Pending

	// Claimed indicates a hunter has committed to the order but has not
	// picked up the item yet.
	Claimed

	// InTransit indicates the hunter has picked up the item and is
	// on the way to the destination.
	InTransit

	// Delivered indicates the item reached its destination. Terminal.
	Delivered

	// Cancelled indicates the sender withdrew the order before transit. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Claimed:   "CLAIMED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Claimed:   "CLAIMED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status ("PENDING",
// "CLAIMED", ...). Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "CLAIMED", ...).
// Implements the fmt.Stringer interface; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Claim transitions the status to Claimed.
//
// Valid transitions:
//   - Pending -> Claimed
//
// Returns (Claimed, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to claim", s))
	}

	return Claimed, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Claimed -> InTransit
//
// Returns (InTransit, nil) on a valid transition, or (0, error) otherwise.
func (s Status) StartTransit() (Status, error) {
	if s != Claimed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start transit", s))
	}

	return InTransit, nil
}

// CompleteDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Returns (Delivered, nil) on a valid transition, or (0, error) otherwise.
// Delivered is a final state with no further transitions possible.
func (s Status) CompleteDelivery() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete delivery", s))
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Claimed -> Cancelled
//
// Orders already in transit or finished cannot be cancelled.
// Returns (Cancelled, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Claimed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}

	return Cancelled, nil
}

// ValidateCanHaveHunter validates the consistency between order status and
// hunter assignment.
//
// Business rules:
//   - Pending orders must not have a hunter assigned
//   - Claimed, InTransit and Delivered orders must have a hunter assigned
//   - Cancelled orders may or may not have one, depending on when the
//     cancellation happened
func (s Status) ValidateCanHaveHunter(hunter bool) error {
	if hunter && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a hunter", s))
	}

	if !hunter && (s == Claimed || s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no hunter", s))
	}

	return nil
}
