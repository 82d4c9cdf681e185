// Package queries contains read-side operations of the CQRS split. Query
// handlers bypass the aggregates and read projections straight from the
// database with raw SQL, returning flat response structs shaped for the
// callers.
package queries

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var ErrGetPendingDispatchOrdersQueryIsNotConstructed = errors.New(
	"GetPendingDispatchOrdersQuery must be created via NewGetPendingDispatchOrdersQuery constructor",
)

// GetPendingDispatchOrdersQuery retrieves the dispatch pool: approved orders
// that are not yet on any trip.
type GetPendingDispatchOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDispatchOrdersQuery creates a query for the dispatch pool.
// This is a parameterless query.
func NewGetPendingDispatchOrdersQuery() GetPendingDispatchOrdersQuery {
	return GetPendingDispatchOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingDispatchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDispatchOrdersQueryIsNotConstructed)
}

// GetPendingDispatchOrdersQueryResponse is one row of the dispatch pool.
type GetPendingDispatchOrdersQueryResponse struct {
	ID              kernel.OrderID
	CustomerID      string
	CustomerName    string
	SalespersonName string
	Date            string
	TotalItems      int
	TotalAmount     kernel.Money
	PaymentMethod   string
}
