package queries_test

import (
	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/core/domain/model/trip"
)

// mockAggregateTracker is a no-op tracker for seeding repositories outside a
// unit of work.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(string, any) {}

func mustDate(raw string) kernel.DeliveryDate {
	date, err := kernel.ParseDeliveryDate(raw)
	if err != nil {
		panic(err)
	}
	return date
}

// buildOrder creates an approved order with one line of seq x 1000 cents.
func buildOrder(rawDate string, seq int) (*order.Order, error) {
	date := mustDate(rawDate)

	rate, err := kernel.NewMoneyFromCents(1000)
	if err != nil {
		return nil, err
	}
	item, err := order.NewItem("prod-1", "Wai Wai Carton", seq, rate, 0, "")
	if err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewOrderID(date, seq),
		"cust-1", "Gupta Stores", "sp-1", "Ramesh",
		date, []order.Item{item}, 0, "credit", false, "27.7,85.3")
}

// buildTrip creates a draft trip for the given delivery person.
func buildTrip(rawDate, deliveryPersonID string) (*trip.Trip, error) {
	return trip.NewTrip(kernel.NewTripID(), mustDate(rawDate),
		deliveryPersonID, "Suresh", "veh-1", "Ba 2 Kha 1234")
}
