package services

import (
	"fmt"
	"time"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/core/domain/model/trip"
	"tradelink/internal/pkg/errs"
)

// CloseMethod selects how pending orders are handled when a trip is finished.
type CloseMethod int

const (
	// CloseUnknown represents an invalid or undefined close method.
	CloseUnknown CloseMethod = iota

	// CloseDirect completes the trip without touching its orders.
	CloseDirect

	// CloseSalesReturn cancels every pending order as a sales return.
	CloseSalesReturn

	// CloseReschedule moves every pending order to the next day and drops it
	// from the trip manifest.
	CloseReschedule
)

func getCloseMethodStrings() map[CloseMethod]string {
	return map[CloseMethod]string{
		CloseDirect:      "direct",
		CloseSalesReturn: "sr",
		CloseReschedule:  "reschedule",
	}
}

// CloseMethodFromString parses the wire representation of a close method
// ("direct", "sr", "reschedule").
func CloseMethodFromString(s string) (CloseMethod, error) {
	for method, str := range getCloseMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return CloseUnknown, errs.NewValueIsInvalidErrorWithCause("close method",
		fmt.Errorf("%q is not a valid close method", s))
}

// String returns the wire name of the close method.
func (m CloseMethod) String() string {
	if str, ok := getCloseMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the CloseMethod value is valid.
func (m CloseMethod) Validate() error {
	if _, ok := getCloseMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("close method",
			fmt.Errorf("%d is not a valid close method", m))
	}
	return nil
}

// CloseOutcome reports what a close-out did: which orders were delivered,
// which pending orders were acted on, and the method that was actually
// applied after the no-pending rule.
type CloseOutcome struct {
	Method    CloseMethod
	Delivered []*order.Order
	Pending   []*order.Order
}

// TripCloser is a domain service applying the close-out policy when a trip
// out for delivery is finished.
//
// Business rules:
//   - Orders are partitioned into delivered and pending (still dispatched)
//   - A trip with no pending orders always closes direct, whatever the caller
//     asked for
//   - direct leaves every order as it is
//   - sr cancels every pending order as a sales return
//   - reschedule moves every pending order to the next day and rewrites the
//     trip manifest to the delivered subset
//   - The trip always ends Completed
type TripCloser struct {
	now func() time.Time
}

// NewTripCloser creates a TripCloser using the wall clock for reschedule dates.
func NewTripCloser() TripCloser {
	return TripCloser{now: time.Now}
}

// NewTripCloserWithClock creates a TripCloser with an explicit clock.
func NewTripCloserWithClock(now func() time.Time) TripCloser {
	return TripCloser{now: now}
}

// Close applies the close-out policy to the trip and its loaded orders and
// completes the trip. The orders slice must hold every order on the trip
// manifest. State changes happen in memory; persisting them is the caller's
// concern.
func (c TripCloser) Close(t *trip.Trip, orders []*order.Order, method CloseMethod) (CloseOutcome, error) {
	if err := t.Validate(); err != nil {
		return CloseOutcome{}, err
	}
	if err := method.Validate(); err != nil {
		return CloseOutcome{}, err
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return CloseOutcome{}, err
		}
		if !t.ContainsOrder(o.ID()) {
			return CloseOutcome{}, errs.NewObjectNotFoundErrorWithCause("order", o.ID().String(),
				fmt.Errorf("order is not on trip %s", t.ID()))
		}
	}

	delivered, pending := partitionOrders(orders)
	if len(pending) == 0 {
		method = CloseDirect
	}

	switch method {
	case CloseSalesReturn:
		for _, o := range pending {
			if err := o.MarkSalesReturn(); err != nil {
				return CloseOutcome{}, err
			}
		}
	case CloseReschedule:
		tomorrow := kernel.NewDeliveryDate(c.now().AddDate(0, 0, 1))
		for _, o := range pending {
			if err := o.Reschedule(tomorrow); err != nil {
				return CloseOutcome{}, err
			}
		}

		keep := make(map[kernel.OrderID]kernel.Money, len(delivered))
		for _, o := range delivered {
			keep[o.ID()] = o.TotalAmount()
		}
		if err := t.RetainOrders(keep); err != nil {
			return CloseOutcome{}, err
		}
	}

	if err := t.Complete(); err != nil {
		return CloseOutcome{}, err
	}

	return CloseOutcome{Method: method, Delivered: delivered, Pending: pending}, nil
}

// partitionOrders splits the trip's orders into delivered and pending.
// Orders already in a terminal cancelled state belong to neither bucket and
// are left untouched.
func partitionOrders(orders []*order.Order) (delivered, pending []*order.Order) {
	for _, o := range orders {
		switch o.Status() {
		case order.Delivered:
			delivered = append(delivered, o)
		case order.Dispatched:
			pending = append(pending, o)
		}
	}
	return delivered, pending
}
