// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
// Provides methods for storing, retrieving, and querying dispatch trips
// with their complete manifest state.
type TripRepository interface {
	// Add persists a new trip aggregate to storage.
	// The trip must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip aggregate.
	// The trip must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip aggregate by its unique identifier.
	// Returns the complete trip with its manifest and aggregates.
	Get(ctx context.Context, id kernel.TripID) (*trip.Trip, error)

	// GetAllActive retrieves all trips that have not been completed yet,
	// newest first.
	GetAllActive(ctx context.Context) ([]*trip.Trip, error)
}
