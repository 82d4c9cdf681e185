package queries

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var ErrGetTripDetailsQueryIsNotConstructed = errors.New(
	"GetTripDetailsQuery must be created via NewGetTripDetailsQuery constructor",
)

// GetTripDetailsQuery retrieves one trip together with its member orders.
type GetTripDetailsQuery struct {
	tripID kernel.TripID
	guard  guard.ConstructorGuard
}

// NewGetTripDetailsQuery creates a query for a single trip's details.
func NewGetTripDetailsQuery(tripID kernel.TripID) (GetTripDetailsQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripDetailsQuery{}, err
	}

	return GetTripDetailsQuery{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// TripID returns the identifier of the requested trip.
func (q GetTripDetailsQuery) TripID() kernel.TripID {
	return q.tripID
}

// Validate ensures the query was created through the constructor.
func (q GetTripDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetTripDetailsQueryIsNotConstructed)
}

// TripOrderResponse is one member order of the trip details view.
type TripOrderResponse struct {
	ID              kernel.OrderID
	CustomerName    string
	SalespersonName string
	TotalItems      int
	TotalAmount     kernel.Money
	Status          string
	Remarks         string
}

// GetTripDetailsQueryResponse is the trip details view: the trip header, its
// member orders and the delivered/pending breakdown derived from them.
type GetTripDetailsQueryResponse struct {
	ID                 kernel.TripID
	Date               string
	DeliveryPersonID   string
	DeliveryPersonName string
	VehicleID          string
	VehicleName        string
	TotalOrders        int
	TotalAmount        kernel.Money
	Status             string
	Orders             []TripOrderResponse
	DeliveredCount     int
	PendingCount       int
}
