package commands

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired    = errors.New("customer id is required")
	ErrSalespersonIDIsRequired = errors.New("salesperson id is required")
	ErrItemsAreRequired        = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to capture a new order into the
// approved pool. Encapsulates the customer, the salesperson, the delivery
// date, and the line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, "cust-1", "Gupta Stores",
//	    "sp-1", "Ramesh", date, items, discount, "credit", true, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerID      string
	customerName    string
	salespersonID   string
	salespersonName string
	date            kernel.DeliveryDate
	items           []order.Item
	discount        kernel.Money
	paymentMethod   string
	vatRequired     bool
	gps             string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to capture a new order.
// Validates the order id, date, discount, and that every line item was
// properly constructed.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	customerID, customerName string,
	salespersonID, salespersonName string,
	date kernel.DeliveryDate,
	items []order.Item,
	discount kernel.Money,
	paymentMethod string,
	vatRequired bool,
	gps string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerName:    customerName,
		salespersonName: salespersonName,
		paymentMethod:   paymentMethod,
		vatRequired:     vatRequired,
		gps:             gps,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setSalespersonID(salespersonID),
		orderCommand.setDate(date),
		orderCommand.setItems(items),
		orderCommand.setDiscount(discount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerID returns the customer identifier.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// SalespersonID returns the salesperson identifier.
func (c CreateOrderCommand) SalespersonID() string {
	return c.salespersonID
}

// SalespersonName returns the salesperson display name.
func (c CreateOrderCommand) SalespersonName() string {
	return c.salespersonName
}

// Date returns the delivery date.
func (c CreateOrderCommand) Date() kernel.DeliveryDate {
	return c.date
}

// Items returns the order line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Discount returns the order-level discount.
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

// PaymentMethod returns the agreed payment method.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// VATRequired reports whether the order needs a VAT invoice.
func (c CreateOrderCommand) VATRequired() bool {
	return c.vatRequired
}

// GPS returns the capture location, when recorded.
func (c CreateOrderCommand) GPS() string {
	return c.gps
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setSalespersonID(salespersonID string) error {
	if salespersonID == "" {
		return ErrSalespersonIDIsRequired
	}

	c.salespersonID = salespersonID
	return nil
}

func (c *CreateOrderCommand) setDate(date kernel.DeliveryDate) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDiscount(discount kernel.Money) error {
	if err := discount.Validate(); err != nil {
		return err
	}

	c.discount = discount
	return nil
}
