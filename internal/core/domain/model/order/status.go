package order

import (
	"fmt"

	"robodelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a strict
// forward-only state machine:
//
//	AwaitingShipment ──> OutForDelivery ──> Delivered
//
// There are no reverse edges and no skipped states. Status is a value object
// that validates transitions and provides the wire representation used for
// persistence and the HTTP API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingShipment is the initial status assigned at order placement.
	// Orders in this status are candidates for the next delivery plan.
	AwaitingShipment

	// OutForDelivery indicates the order was committed into a delivery plan
	// and is in flight on a robot.
	OutForDelivery

	// Delivered indicates the order reached its destination.
	// This is a final state with no further transitions.
	Delivered
)

// getStatusStrings returns the wire names for all Status values,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		AwaitingShipment: "awaiting_shipment",
		OutForDelivery:   "out_for_delivery",
		Delivered:        "delivered",
	}
}

// getValidStatusStrings returns the wire names for valid Status values only.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingShipment: "awaiting_shipment",
		OutForDelivery:   "out_for_delivery",
		Delivered:        "delivered",
	}
}

// Validate checks that the Status is one of the three lifecycle states.
// Unknown (0) and any other value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("awaiting_shipment",
// "out_for_delivery", "delivered"), or "unknown" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Dispatch transitions the status to OutForDelivery.
//
// The only valid source state is AwaitingShipment: an order can enter a
// delivery plan once, and a delivered or in-flight order can never be
// planned again.
//
// Returns (OutForDelivery, nil) on a valid transition, or (0, error
// unwrapping to errs.ErrInvalidTransition) otherwise.
func (s Status) Dispatch() (Status, error) {
	if s != AwaitingShipment {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			s.String(), OutForDelivery.String(),
			fmt.Errorf("only %s orders can be dispatched", AwaitingShipment),
		)
	}

	return OutForDelivery, nil
}

// Complete transitions the status to Delivered.
//
// The only valid source state is OutForDelivery. Completing an order that
// is still awaiting shipment, already delivered, or nonexistent is rejected
// with an error unwrapping to errs.ErrInvalidTransition — a second delivery
// of the same order fails by design rather than silently succeeding.
func (s Status) Complete() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			s.String(), Delivered.String(),
			fmt.Errorf("only %s orders can be completed", OutForDelivery),
		)
	}

	return Delivered, nil
}

// ValidateCanHaveArrival validates the consistency between a status and the
// presence of an arrival timestamp: only Delivered orders carry one, and
// every Delivered order must carry one. Used when restoring orders from
// persistence.
func (s Status) ValidateCanHaveArrival(arrived bool) error {
	if arrived && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have an arrival time", s),
		)
	}

	if !arrived && s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s requires an arrival time", s),
		)
	}

	return nil
}
