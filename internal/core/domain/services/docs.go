// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the trade-link dispatch system. It implements
// complex business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TripCloser: A domain service applying the close-out policy to a trip and its orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
