package order

import (
	"fmt"

	"tradelink/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that every status
// change in the system goes through a central guard.
//
// State transitions:
//
//	Approved ──> Dispatched ──> Delivered
//	    ^             │
//	    └─────────────┘
//	 (release from trip / reschedule)
//
//	Approved, Dispatched ──> Cancelled
//
// Delivered is the canonical terminal success state; Cancelled covers both
// manual cancellation and sales returns at trip close-out.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Approved is the initial status of a captured order.
	// Approved orders form the pending-dispatch pool.
	Approved

	// Dispatched indicates the order is attached to a dispatch trip.
	Dispatched

	// Delivered indicates the order reached the customer. Final state.
	Delivered

	// Cancelled indicates the order was cancelled or returned. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Approved:   "approved",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Approved:   "approved",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Approved, Dispatched, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("approved", "dispatched",
// "delivered", "cancelled"). Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateDispatch checks if the status allows trip assignment without
// performing the transition. Approved orders can be dispatched; re-dispatching
// an already Dispatched order is allowed (the out-for-delivery force-set).
func (s Status) ValidateDispatch() error {
	if s != Approved && s != Dispatched {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()))
	}
	return nil
}

// ValidateCanHaveTrip validates the consistency between order status and trip
// assignment:
//   - Approved orders never reference a trip (they sit in the dispatch pool)
//   - Dispatched and Delivered orders always reference the trip that carried them
//   - Cancelled orders may reference a trip (sales return) or not (manual cancel)
func (s Status) ValidateCanHaveTrip(hasTrip bool) error {
	if hasTrip && s == Approved {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a trip", s.String()))
	}

	if !hasTrip && (s == Dispatched || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no trip", s.String()))
	}

	return nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Approved -> Dispatched (trip assignment)
//   - Dispatched -> Dispatched (force-set when the trip goes out for delivery)
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateDispatch(); err != nil {
		return 0, err
	}
	return Dispatched, nil
}

// Release transitions the status back to Approved.
//
// Valid transitions:
//   - Dispatched -> Approved (removal from a draft trip, or reschedule)
func (s Status) Release() (Status, error) {
	if s != Dispatched {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to release", s.String()))
	}
	return Approved, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Dispatched -> Delivered (delivery confirmation)
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Approved -> Cancelled (manual cancellation)
//   - Dispatched -> Cancelled (sales return at trip close-out)
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}
	return Cancelled, nil
}
