package order

import (
	"errors"
	"fmt"

	"grabngo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with forward-only, single-step transitions:
//
//	pending ──> accepted ──> preparing ──> picked_up ──> delivering ──> delivered
//	   │            │            │             │             │
//	   └────────────┴────────────┴─────────────┴─────────────┴──> cancelled
//
// delivered and cancelled are terminal. Status is a value object that
// validates every transition and provides the snake_case string form used
// by the API and the database.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout.
	// Pending orders are visible to every online driver.
	StatusPending

	// StatusAccepted means a driver claimed the order.
	StatusAccepted

	// StatusPreparing means the restaurant or store is preparing the order.
	StatusPreparing

	// StatusPickedUp means the driver collected the order.
	StatusPickedUp

	// StatusDelivering means the driver is on the way to the customer.
	StatusDelivering

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the terminal state for abandoned orders,
	// reachable from any non-terminal state.
	StatusCancelled
)

// ErrInvalidTransition is the sentinel all transition failures unwrap to.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports an action incompatible with the order's
// current status, e.g. advancing a pending order or assigning an order
// that already left pending.
type InvalidTransitionError struct {
	From   Status
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in status %s", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusAccepted:   "accepted",
		StatusPreparing:  "preparing",
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
		StatusAccepted:   "accepted",
		StatusPreparing:  "preparing",
		StatusPickedUp:   "picked_up",
		StatusDelivering: "delivering",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the wire/database representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status. Implements fmt.Stringer
// and is safe on any value; invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Assign transitions pending to accepted. Assignment from any other status
// fails: the order either already has a driver or already left the queue.
func (s Status) Assign() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, &InvalidTransitionError{From: s, Action: "assign"}
	}
	return StatusAccepted, nil
}

// Next returns the single forward step for the advance action:
//
//	accepted -> preparing -> picked_up -> delivering -> delivered
//
// pending orders must be assigned, not advanced; terminal states have no
// next step.
func (s Status) Next() (Status, error) {
	switch s {
	case StatusAccepted:
		return StatusPreparing, nil
	case StatusPreparing:
		return StatusPickedUp, nil
	case StatusPickedUp:
		return StatusDelivering, nil
	case StatusDelivering:
		return StatusDelivered, nil
	default:
		return StatusUnknown, &InvalidTransitionError{From: s, Action: "advance"}
	}
}

// Cancel transitions any non-terminal status to cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, &InvalidTransitionError{From: s, Action: "cancel"}
	}
	return StatusCancelled, nil
}

// ValidateCanHaveDriver validates the consistency between status and driver
// assignment: pending orders must not have a driver, accepted through
// delivered orders must, and cancelled orders may or may not depending on
// when they were cancelled.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if s == StatusCancelled {
		return nil
	}

	if hasDriver && s == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s))
	}

	if !hasDriver && s != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s))
	}

	return nil
}
