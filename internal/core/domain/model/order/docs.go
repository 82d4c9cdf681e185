// Package order provides domain entities and business logic for order
// management in the trade-link dispatch system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item: A value object for order line items (product, quantity, rate, discount, scheme)
//
// Key business rules:
//   - Orders must have a valid identifier, customer, delivery date, and at least one line item
//   - Order status follows a defined workflow: Approved -> Dispatched -> Delivered
//   - Dispatched orders can be released back to Approved (trip removal, reschedule)
//   - Non-terminal orders can be cancelled; Delivered and Cancelled are final
//   - Dispatched and Delivered orders always reference the trip that carried them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
