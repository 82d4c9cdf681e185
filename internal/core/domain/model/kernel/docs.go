// Package kernel provides core domain primitives for the trade-link dispatch
// system. It implements the fundamental value objects used throughout the
// domain model.
//
// The package includes:
//   - OrderID: invoice-style order identifier (date prefix + sequence)
//   - TripID: dispatch trip identifier with the canonical trip_ prefix
//   - DeliveryDate: calendar-date value object with YYYY-MM-DD canonical form
//   - Money: monetary amount stored as integer cents
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
