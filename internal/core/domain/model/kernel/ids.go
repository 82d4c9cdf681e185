package kernel

import (
	"fmt"
	"strings"

	"tradelink/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsRequired is returned when validating an empty OrderID.
var ErrOrderIDIsRequired = errs.NewValueIsRequiredError(
	"order id must be created via NewOrderID or OrderIDFromString")

// ErrTripIDIsRequired is returned when validating an empty TripID.
var ErrTripIDIsRequired = errs.NewValueIsRequiredError(
	"trip id must be created via NewTripID or TripIDFromString")

// TripIDPrefix is the canonical prefix of every trip identifier.
const TripIDPrefix = "trip_"

// OrderID identifies an order. Order ids are invoice-style strings generated
// by the order-entry flow: a date prefix followed by a daily sequence number,
// e.g. "ORD-20260829-0042". Ids imported from legacy data may deviate from
// the canonical shape; they only need to be non-empty and free of whitespace.
type OrderID string

// NewOrderID builds a canonical order id from a delivery date and a daily
// sequence number.
//
// Example:
//
//	date, _ := kernel.ParseDeliveryDate("2026-08-29")
//	id := kernel.NewOrderID(date, 42) // "ORD-20260829-0042"
func NewOrderID(date DeliveryDate, seq int) OrderID {
	return OrderID(fmt.Sprintf("ORD-%s-%04d", date.Time().Format("20060102"), seq))
}

// OrderIDFromString validates and converts a raw string into an OrderID.
// Returns an error for empty strings or strings containing whitespace.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return "", ErrOrderIDIsRequired
	}
	if strings.ContainsAny(s, " \t\n") {
		return "", errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%q contains whitespace", s))
	}
	return OrderID(s), nil
}

// String returns the raw identifier.
func (id OrderID) String() string {
	return string(id)
}

// IsEqual compares two order ids for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id == other
}

// Validate checks that the OrderID is non-empty.
func (id OrderID) Validate() error {
	if id == "" {
		return ErrOrderIDIsRequired
	}
	return nil
}

// TripID identifies a dispatch trip. Trip ids carry the "trip_" prefix
// followed by the first group of a random UUID, e.g. "trip_550e8400".
type TripID string

// NewTripID generates a new random trip identifier.
func NewTripID() TripID {
	return TripID(TripIDPrefix + strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// TripIDFromString validates and converts a raw string into a TripID.
// The string must carry the canonical "trip_" prefix with a non-empty suffix.
func TripIDFromString(s string) (TripID, error) {
	if s == "" {
		return "", ErrTripIDIsRequired
	}
	if !strings.HasPrefix(s, TripIDPrefix) || len(s) == len(TripIDPrefix) {
		return "", errs.NewValueIsInvalidErrorWithCause("trip id",
			fmt.Errorf("%q does not match %s<suffix>", s, TripIDPrefix))
	}
	return TripID(s), nil
}

// String returns the raw identifier.
func (id TripID) String() string {
	return string(id)
}

// IsEqual compares two trip ids for equality.
func (id TripID) IsEqual(other TripID) bool {
	return id == other
}

// Validate checks that the TripID is non-empty and carries the canonical prefix.
func (id TripID) Validate() error {
	if id == "" {
		return ErrTripIDIsRequired
	}
	if !strings.HasPrefix(string(id), TripIDPrefix) {
		return errs.NewValueIsInvalidErrorWithCause("trip id",
			fmt.Errorf("%q does not match %s<suffix>", id.String(), TripIDPrefix))
	}
	return nil
}
