// Package trip provides domain entities and business logic for dispatch trip
// management in the trade-link dispatch system. It implements the Trip
// aggregate root with lifecycle management and order manifest bookkeeping.
//
// The package includes:
//   - Trip: The aggregate root that manages the trip manifest and lifecycle
//   - Status: A state machine that enforces the packing and delivery workflow
//
// Key business rules:
//   - Trip status follows a strictly sequential workflow:
//     Draft -> ReadyForPacking -> Packed -> OutForDelivery -> Completed
//   - Orders can only be attached to or detached from Draft trips
//   - Duplicate order ids on the manifest are rejected
//   - totalOrders and totalAmount always agree with the order id manifest;
//     they change only through AttachOrder, DetachOrder, and RetainOrders
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package trip
