package trip

import (
	"fmt"

	"tradelink/internal/pkg/errs"
)

// Status represents the lifecycle state of a dispatch trip.
// It implements a strictly sequential state machine:
//
//	Draft ──> ReadyForPacking ──> Packed ──> OutForDelivery ──> Completed
//
// No stage may be skipped and no transition goes backwards.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a created trip.
	// Only Draft trips accept manifest changes.
	Draft

	// ReadyForPacking indicates the manifest is frozen and handed to the warehouse.
	ReadyForPacking

	// Packed indicates all goods for the trip are packed and loaded.
	Packed

	// OutForDelivery indicates the trip left the warehouse.
	OutForDelivery

	// Completed indicates the trip was closed out. Final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Draft:           "draft",
		ReadyForPacking: "ready_for_packing",
		Packed:          "packed",
		OutForDelivery:  "out_for_delivery",
		Completed:       "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:           "draft",
		ReadyForPacking: "ready_for_packing",
		Packed:          "packed",
		OutForDelivery:  "out_for_delivery",
		Completed:       "completed",
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
		fmt.Errorf("%q is not a valid trip status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Draft, ReadyForPacking, Packed, OutForDelivery, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid trip status", s))
	}
	return nil
}

// String returns the wire name of the status ("draft", "ready_for_packing",
// "packed", "out_for_delivery", "completed"). Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Next returns the status that follows in the sequential workflow.
// Returns an error for Completed (terminal) and invalid values.
func (s Status) Next() (Status, error) {
	switch s {
	case Draft:
		return ReadyForPacking, nil
	case ReadyForPacking:
		return Packed, nil
	case Packed:
		return OutForDelivery, nil
	case OutForDelivery:
		return Completed, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s has no next status", s.String()))
	}
}

func (s Status) transitionTo(target Status) (Status, error) {
	next, err := s.Next()
	if err != nil {
		return 0, err
	}
	if next != target {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to become %s", s.String(), target.String()))
	}
	return target, nil
}

// ToReadyForPacking transitions the status from Draft to ReadyForPacking.
func (s Status) ToReadyForPacking() (Status, error) {
	return s.transitionTo(ReadyForPacking)
}

// ToPacked transitions the status from ReadyForPacking to Packed.
func (s Status) ToPacked() (Status, error) {
	return s.transitionTo(Packed)
}

// ToOutForDelivery transitions the status from Packed to OutForDelivery.
func (s Status) ToOutForDelivery() (Status, error) {
	return s.transitionTo(OutForDelivery)
}

// ToCompleted transitions the status from OutForDelivery to Completed.
func (s Status) ToCompleted() (Status, error) {
	return s.transitionTo(Completed)
}
