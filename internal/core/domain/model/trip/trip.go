package trip

import (
	"errors"
	"fmt"
	"time"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/errs"
	"tradelink/internal/pkg/guard"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not created
	// through the NewTrip or RestoreTrip factory methods.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip or RestoreTrip constructor")

	// ErrTripIsNotDraft is returned when attempting to change the manifest of a
	// trip that already left the Draft stage.
	ErrTripIsNotDraft = errors.New("trip manifest can only be changed while the trip is a draft")

	// ErrOrderAlreadyOnTrip is returned when attaching an order id that is
	// already on the manifest.
	ErrOrderAlreadyOnTrip = errors.New("order is already on the trip manifest")

	// ErrOrderNotOnTrip is returned when detaching an order id that is not on
	// the manifest.
	ErrOrderNotOnTrip = errors.New("order is not on the trip manifest")
)

// Trip represents one dispatch run: a delivery person taking a vehicle out on
// a date with a manifest of orders. It is the aggregate root for the packing
// and delivery workflow.
//
// Trip maintains these invariants:
//   - totalOrders always equals the number of order ids on the manifest
//   - totalAmount always equals the sum of the manifest orders' amounts
//   - the manifest changes only while the trip is in Draft, except for the
//     close-out rewrite done by RetainOrders
//   - all status changes go through the Status state machine
type Trip struct {
	id                 kernel.TripID
	date               kernel.DeliveryDate
	deliveryPersonID   string
	deliveryPersonName string
	vehicleID          string
	vehicleName        string
	orderIDs           []kernel.OrderID
	totalOrders        int
	totalAmount        kernel.Money
	status             Status
	createdAt          time.Time

	guard guard.ConstructorGuard
}

// NewTrip creates a Draft trip with an empty manifest.
func NewTrip(
	id kernel.TripID,
	date kernel.DeliveryDate,
	deliveryPersonID, deliveryPersonName string,
	vehicleID, vehicleName string,
) (*Trip, error) {
	if err := errors.Join(id.Validate(), date.Validate()); err != nil {
		return nil, err
	}
	if deliveryPersonID == "" {
		return nil, errs.NewValueIsRequiredError("delivery person id")
	}
	if vehicleID == "" {
		return nil, errs.NewValueIsRequiredError("vehicle id")
	}

	return &Trip{
		id:                 id,
		date:               date,
		deliveryPersonID:   deliveryPersonID,
		deliveryPersonName: deliveryPersonName,
		vehicleID:          vehicleID,
		vehicleName:        vehicleName,
		status:             Draft,
		createdAt:          time.Now().UTC(),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// RestoreTrip reconstructs a trip from persistence. The stored aggregates must
// agree with the manifest.
func RestoreTrip(
	id kernel.TripID,
	date kernel.DeliveryDate,
	deliveryPersonID, deliveryPersonName string,
	vehicleID, vehicleName string,
	orderIDs []kernel.OrderID,
	totalOrders int,
	totalAmount kernel.Money,
	status Status,
	createdAt time.Time,
) (*Trip, error) {
	if err := errors.Join(
		id.Validate(),
		date.Validate(),
		totalAmount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	for _, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}
	if totalOrders != len(orderIDs) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total orders",
			fmt.Errorf("total orders %d does not match manifest size %d", totalOrders, len(orderIDs)))
	}

	manifest := make([]kernel.OrderID, len(orderIDs))
	copy(manifest, orderIDs)

	return &Trip{
		id:                 id,
		date:               date,
		deliveryPersonID:   deliveryPersonID,
		deliveryPersonName: deliveryPersonName,
		vehicleID:          vehicleID,
		vehicleName:        vehicleName,
		orderIDs:           manifest,
		totalOrders:        totalOrders,
		totalAmount:        totalAmount,
		status:             status,
		createdAt:          createdAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Trip instance was properly constructed.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.TripID {
	return t.id
}

// Date returns the planned delivery date.
func (t *Trip) Date() kernel.DeliveryDate {
	return t.date
}

// DeliveryPersonID returns the delivery person identifier.
func (t *Trip) DeliveryPersonID() string {
	return t.deliveryPersonID
}

// DeliveryPersonName returns the delivery person display name.
func (t *Trip) DeliveryPersonName() string {
	return t.deliveryPersonName
}

// VehicleID returns the vehicle identifier.
func (t *Trip) VehicleID() string {
	return t.vehicleID
}

// VehicleName returns the vehicle display name.
func (t *Trip) VehicleName() string {
	return t.vehicleName
}

// OrderIDs returns the manifest order ids in attachment order.
// The returned slice is a copy to prevent external modification.
func (t *Trip) OrderIDs() []kernel.OrderID {
	out := make([]kernel.OrderID, len(t.orderIDs))
	copy(out, t.orderIDs)
	return out
}

// TotalOrders returns the number of orders on the manifest.
func (t *Trip) TotalOrders() int {
	return t.totalOrders
}

// TotalAmount returns the summed amount of the manifest orders.
func (t *Trip) TotalAmount() kernel.Money {
	return t.totalAmount
}

// Status returns the current status of the trip.
func (t *Trip) Status() Status {
	return t.status
}

// CreatedAt returns the trip creation time.
func (t *Trip) CreatedAt() time.Time {
	return t.createdAt
}

// ContainsOrder reports whether the order id is on the manifest.
func (t *Trip) ContainsOrder(orderID kernel.OrderID) bool {
	for _, id := range t.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AttachOrder appends an order to the manifest and adds its amount to the
// trip aggregates. Only Draft trips accept new orders; duplicates are
// rejected.
func (t *Trip) AttachOrder(orderID kernel.OrderID, amount kernel.Money) error {
	if err := errors.Join(orderID.Validate(), amount.Validate()); err != nil {
		return err
	}
	if t.status != Draft {
		return ErrTripIsNotDraft
	}
	if t.ContainsOrder(orderID) {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyOnTrip, orderID)
	}

	t.orderIDs = append(t.orderIDs, orderID)
	t.totalOrders++
	t.totalAmount = t.totalAmount.Add(amount)
	return nil
}

// DetachOrder removes an order from the manifest and subtracts its amount
// from the trip aggregates. Only Draft trips can shed orders.
func (t *Trip) DetachOrder(orderID kernel.OrderID, amount kernel.Money) error {
	if err := errors.Join(orderID.Validate(), amount.Validate()); err != nil {
		return err
	}
	if t.status != Draft {
		return ErrTripIsNotDraft
	}

	index := -1
	for i, id := range t.orderIDs {
		if id.IsEqual(orderID) {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: %s", ErrOrderNotOnTrip, orderID)
	}

	newAmount, err := t.totalAmount.Sub(amount)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("order amount %s exceeds trip total %s", amount, t.totalAmount))
	}

	t.orderIDs = append(t.orderIDs[:index], t.orderIDs[index+1:]...)
	t.totalOrders--
	t.totalAmount = newAmount
	return nil
}

// RetainOrders rewrites the manifest to the kept subset and recomputes both
// aggregates from it. Used at close-out when pending orders are rescheduled
// off the trip: the delivered orders stay, everything else drops.
//
// Manifest order is preserved; kept ids missing from the current manifest are
// rejected.
func (t *Trip) RetainOrders(keep map[kernel.OrderID]kernel.Money) error {
	for orderID := range keep {
		if !t.ContainsOrder(orderID) {
			return fmt.Errorf("%w: %s", ErrOrderNotOnTrip, orderID)
		}
	}

	retained := make([]kernel.OrderID, 0, len(keep))
	var total kernel.Money
	for _, orderID := range t.orderIDs {
		amount, ok := keep[orderID]
		if !ok {
			continue
		}
		retained = append(retained, orderID)
		total = total.Add(amount)
	}

	t.orderIDs = retained
	t.totalOrders = len(retained)
	t.totalAmount = total
	return nil
}

// SetAggregates overwrites totalOrders and totalAmount with externally
// re-derived values. Used only by reconciliation; every other path keeps the
// aggregates in lockstep with the manifest.
func (t *Trip) SetAggregates(totalOrders int, totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	if totalOrders != len(t.orderIDs) {
		return errs.NewValueIsInvalidErrorWithCause("total orders",
			fmt.Errorf("total orders %d does not match manifest size %d", totalOrders, len(t.orderIDs)))
	}

	t.totalOrders = totalOrders
	t.totalAmount = totalAmount
	return nil
}

// MarkReadyForPacking freezes the manifest and hands the trip to the warehouse.
func (t *Trip) MarkReadyForPacking() error {
	newStatus, err := t.status.ToReadyForPacking()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// MarkPacked records that all goods for the trip are packed and loaded.
func (t *Trip) MarkPacked() error {
	newStatus, err := t.status.ToPacked()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// StartDelivery sends the trip out of the warehouse.
func (t *Trip) StartDelivery() error {
	newStatus, err := t.status.ToOutForDelivery()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Complete closes out the trip. Final transition.
func (t *Trip) Complete() error {
	newStatus, err := t.status.ToCompleted()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}
