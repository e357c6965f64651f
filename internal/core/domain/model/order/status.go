package order

import (
	"fmt"

	"fastroute/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickingUp ──> PickedUp ──> Delivering ──> Delivered
//	   │            │            │            │             │
//	   └────────────┴────────────┴────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are final states. The string forms are the
// lowercase tokens used on the wire and in storage.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created order
	// waiting for a bot assignment.
	StatusPending

	// StatusAssigned means a bot has accepted the order but has not
	// started moving yet.
	StatusAssigned

	// StatusPickingUp means the bot is travelling to the restaurant.
	StatusPickingUp

	// StatusPickedUp means the bot has collected the order at the restaurant.
	StatusPickedUp

	// StatusDelivering means the bot is travelling to the customer.
	StatusDelivering

	// StatusDelivered means the order reached the customer. Final state.
	StatusDelivered

	// StatusCancelled means the order was cancelled before delivery. Final state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusAssigned:   "assigned",
		StatusPickingUp:  "picking_up",
		StatusPickedUp:   "picked_up",
		StatusDelivering: "delivering",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusAssigned:   "assigned",
		StatusPickingUp:  "picking_up",
		StatusPickedUp:   "picked_up",
		StatusDelivering: "delivering",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// ParseStatus converts a lowercase status token into a Status value.
// Returns an error for unrecognized tokens.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the lowercase token of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is a final state.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether the order is assigned to a bot and in flight.
func (s Status) IsActive() bool {
	switch s {
	case StatusAssigned, StatusPickingUp, StatusPickedUp, StatusDelivering:
		return true
	default:
		return false
	}
}

// next returns the single forward successor of the status, or StatusUnknown
// for terminal and pending states.
func (s Status) next() Status {
	switch s {
	case StatusAssigned:
		return StatusPickingUp
	case StatusPickingUp:
		return StatusPickedUp
	case StatusPickedUp:
		return StatusDelivering
	case StatusDelivering:
		return StatusDelivered
	default:
		return StatusUnknown
	}
}

// CanTransitionTo reports whether target is reachable from s in one step.
// Forward progress follows the delivery pipeline; cancellation is allowed
// from any non-terminal state; assignment only from pending.
func (s Status) CanTransitionTo(target Status) bool {
	if target == StatusCancelled {
		return !s.IsTerminal() && s != StatusUnknown
	}
	if target == StatusAssigned {
		return s == StatusPending
	}
	return s.next() == target
}

// TransitionTo returns target if the transition is legal, or an illegal
// transition error naming both states otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewIllegalTransitionError("status",
			fmt.Sprintf("cannot transition from %s to %s", s, target))
	}
	return target, nil
}
