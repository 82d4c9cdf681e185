package order

import (
	"errors"
	"fmt"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when creating an order without line items.
	ErrOrderHasNoItems = errors.New("order must have at least one line item")
)

// SalesReturnRemark is the audit note prefixed to an order's remarks when the
// order is marked as a sales return during trip close-out.
const SalesReturnRemark = "Sales Return - Trip finished with order pending."

// Order represents a customer purchase record. It is the aggregate root that
// manages the order lifecycle from capture through dispatch to delivery,
// cancellation, or reschedule.
//
// Order maintains these invariants:
//   - id, customer, salesperson, and delivery date are always valid
//   - totalItems and totalAmount are derived from the line items at capture
//     and never mutated independently
//   - the trip reference is consistent with the status (see Status.ValidateCanHaveTrip)
//   - all status changes go through the Status state machine
type Order struct {
	id              kernel.OrderID
	customerID      string
	customerName    string
	salespersonID   string
	salespersonName string
	date            kernel.DeliveryDate
	items           []Item
	totalItems      int
	totalAmount     kernel.Money
	discount        kernel.Money
	status          Status
	assignedTripID  *kernel.TripID
	remarks         string
	gps             string
	paymentMethod   string
	vatRequired     bool

	isConstructed bool
}

// NewOrder captures a new order into the Approved pool.
//
// totalItems is derived as the sum of line quantities and totalAmount as the
// sum of line totals minus the order-level discount. Returns an error when the
// discount exceeds the item total.
func NewOrder(
	id kernel.OrderID,
	customerID, customerName string,
	salespersonID, salespersonName string,
	date kernel.DeliveryDate,
	items []Item,
	discount kernel.Money,
	paymentMethod string,
	vatRequired bool,
	gps string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), date.Validate(), discount.Validate()); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customer id")
	}
	if salespersonID == "" {
		return nil, errs.NewValueIsRequiredError("salesperson id")
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	var totalItems int
	var itemsTotal kernel.Money
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		totalItems += item.Qty()
		itemsTotal = itemsTotal.Add(item.LineTotal())
	}

	totalAmount, err := itemsTotal.Sub(discount)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("order discount %s exceeds item total %s", discount, itemsTotal))
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		customerName:    customerName,
		salespersonID:   salespersonID,
		salespersonName: salespersonName,
		date:            date,
		items:           items,
		totalItems:      totalItems,
		totalAmount:     totalAmount,
		discount:        discount,
		status:          Approved,
		paymentMethod:   paymentMethod,
		vatRequired:     vatRequired,
		gps:             gps,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The stored totals are
// trusted as written; status and trip reference are checked for coherence.
func RestoreOrder(
	id kernel.OrderID,
	customerID, customerName string,
	salespersonID, salespersonName string,
	date kernel.DeliveryDate,
	items []Item,
	totalItems int,
	totalAmount, discount kernel.Money,
	status Status,
	assignedTripID *kernel.TripID,
	remarks string,
	paymentMethod string,
	vatRequired bool,
	gps string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		date.Validate(),
		totalAmount.Validate(),
		discount.Validate(),
		status.Validate(),
		status.ValidateCanHaveTrip(assignedTripID != nil),
	); err != nil {
		return nil, err
	}
	if assignedTripID != nil {
		if err := assignedTripID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		customerName:    customerName,
		salespersonID:   salespersonID,
		salespersonName: salespersonName,
		date:            date,
		items:           items,
		totalItems:      totalItems,
		totalAmount:     totalAmount,
		discount:        discount,
		status:          status,
		assignedTripID:  assignedTripID,
		remarks:         remarks,
		paymentMethod:   paymentMethod,
		vatRequired:     vatRequired,
		gps:             gps,
		isConstructed:   true,
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
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the customer identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// SalespersonID returns the salesperson identifier.
func (o *Order) SalespersonID() string {
	return o.salespersonID
}

// SalespersonName returns the salesperson display name.
func (o *Order) SalespersonName() string {
	return o.salespersonName
}

// Date returns the delivery date.
func (o *Order) Date() kernel.DeliveryDate {
	return o.date
}

// Items returns the order line items in capture order.
func (o *Order) Items() []Item {
	return o.items
}

// TotalItems returns the total piece count across all line items.
func (o *Order) TotalItems() int {
	return o.totalItems
}

// TotalAmount returns the order net amount.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Discount returns the order-level discount.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Trip returns the assigned trip's ID, or nil when the order is not on a trip.
func (o *Order) Trip() *kernel.TripID {
	return o.assignedTripID
}

// Remarks returns the free-text remarks, including any audit notes.
func (o *Order) Remarks() string {
	return o.remarks
}

// GPS returns the capture location, when recorded.
func (o *Order) GPS() string {
	return o.gps
}

// PaymentMethod returns the agreed payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// VATRequired reports whether the order needs a VAT invoice.
func (o *Order) VATRequired() bool {
	return o.vatRequired
}

// AssignToTrip attaches the order to a dispatch trip, moving it to Dispatched.
// Re-assigning to the same trip is allowed (the out-for-delivery force-set
// re-dispatches every order on the trip); moving a dispatched order to a
// different trip is not.
func (o *Order) AssignToTrip(tripID kernel.TripID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	if o.assignedTripID != nil && !o.assignedTripID.IsEqual(tripID) {
		return errs.NewValueIsInvalidErrorWithCause("trip id",
			fmt.Errorf("order %s already belongs to trip %s", o.id, *o.assignedTripID))
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTripID = &tripID
	return nil
}

// ReleaseFromTrip detaches the order from its trip, returning it to the
// Approved pool. Only Dispatched orders can be released.
func (o *Order) ReleaseFromTrip() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTripID = nil
	return nil
}

// Deliver marks the order as delivered. The trip reference is kept: the trip
// retains delivered orders through close-out.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order. Terminal orders cannot be cancelled. A trip
// reference, if present, is kept for the audit trail.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkSalesReturn cancels a pending order at trip close-out and prefixes the
// remarks with the sales-return audit note. The trip reference is kept.
func (o *Order) MarkSalesReturn() error {
	if err := o.Cancel(); err != nil {
		return err
	}

	o.remarks = joinRemarks(SalesReturnRemark, o.remarks)
	return nil
}

// Reschedule returns a pending order to the Approved pool with a new delivery
// date, clearing the trip reference and prefixing the remarks with a
// reschedule audit note.
func (o *Order) Reschedule(date kernel.DeliveryDate) error {
	if err := date.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTripID = nil
	o.date = date
	o.remarks = joinRemarks(fmt.Sprintf("Rescheduled to %s - Trip finished with order pending.", date), o.remarks)
	return nil
}

func joinRemarks(note, existing string) string {
	if existing == "" {
		return note
	}
	return note + " " + existing
}
