package ports

import (
	"context"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and trip assignment.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items, status, and trip reference.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByIDs retrieves the order aggregates for the given identifiers.
	// Every id must resolve; a missing order is an error, not a short read.
	GetByIDs(ctx context.Context, ids []kernel.OrderID) ([]*order.Order, error)

	// GetAllInApprovedStatus retrieves all orders awaiting trip assignment.
	GetAllInApprovedStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllByTrip retrieves all orders referencing the given trip.
	GetAllByTrip(ctx context.Context, tripID kernel.TripID) ([]*order.Order, error)
}
