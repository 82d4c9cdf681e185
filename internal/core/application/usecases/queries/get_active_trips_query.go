package queries

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var ErrGetActiveTripsQueryIsNotConstructed = errors.New(
	"GetActiveTripsQuery must be created via NewGetActiveTripsQuery constructor",
)

// GetActiveTripsQuery retrieves all trips that have not been completed yet,
// optionally narrowed to a single delivery person.
type GetActiveTripsQuery struct {
	deliveryPersonID string
	guard            guard.ConstructorGuard
}

// NewGetActiveTripsQuery creates a query for active trips. An empty
// deliveryPersonID returns trips for every delivery person.
func NewGetActiveTripsQuery(deliveryPersonID string) GetActiveTripsQuery {
	return GetActiveTripsQuery{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}
}

// DeliveryPersonID returns the optional delivery person filter.
func (q GetActiveTripsQuery) DeliveryPersonID() string {
	return q.deliveryPersonID
}

// Validate ensures the query was created through the constructor.
func (q GetActiveTripsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveTripsQueryIsNotConstructed)
}

// GetActiveTripsQueryResponse is one row of the active trips listing.
type GetActiveTripsQueryResponse struct {
	ID                 kernel.TripID
	Date               string
	DeliveryPersonID   string
	DeliveryPersonName string
	VehicleName        string
	TotalOrders        int
	TotalAmount        kernel.Money
	Status             string
}
