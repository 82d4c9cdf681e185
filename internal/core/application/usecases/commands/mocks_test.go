package commands_test

import (
	"context"
	"testing"

	"tradelink/internal/core/application/usecases/commands"
	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/core/domain/model/trip"
	"tradelink/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIDs(ctx context.Context, ids []kernel.OrderID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInApprovedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByTrip(ctx context.Context, tripID kernel.TripID) ([]*order.Order, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, tr *trip.Trip) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, tr *trip.Trip) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.TripID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetAllActive(ctx context.Context) ([]*trip.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trip.Trip), args.Error(1)
}

// MockUoW satisfies UoW, OrderUoW, and TripUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTripUoWFactory struct{ mock.Mock }

func (m *MockTripUoWFactory) Create() commands.TripUoW {
	args := m.Called()
	return args.Get(0).(commands.TripUoW)
}

// Shared fixtures.

func fixtureDate(t *testing.T) kernel.DeliveryDate {
	t.Helper()
	date, err := kernel.ParseDeliveryDate("2026-01-15")
	require.NoError(t, err)
	return date
}

func fixtureTripID(t *testing.T) kernel.TripID {
	t.Helper()
	id, err := kernel.TripIDFromString("trip_a1b2c3d4")
	require.NoError(t, err)
	return id
}

func fixtureItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("prod-1", "Mineral Water 1L", 2, kernel.Money(1000), 0, "")
	require.NoError(t, err)
	return []order.Item{item}
}

// fixtureApprovedOrder builds an order worth 2000 cents in Approved status.
func fixtureApprovedOrder(t *testing.T, seq int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(fixtureDate(t), seq), "cust-1", "Gupta Stores",
		"sp-1", "Ramesh", fixtureDate(t), fixtureItems(t), 0, "cash", false, "")
	require.NoError(t, err)
	return o
}

func fixtureDispatchedOrder(t *testing.T, seq int) *order.Order {
	t.Helper()
	o := fixtureApprovedOrder(t, seq)
	require.NoError(t, o.AssignToTrip(fixtureTripID(t)))
	return o
}

func fixtureDraftTrip(t *testing.T) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(fixtureTripID(t), fixtureDate(t), "dp-1", "Suresh", "veh-1", "Ba 2 Kha 1234")
	require.NoError(t, err)
	return tr
}

// fixtureTripOutForDelivery builds a trip carrying the given orders that has
// gone out for delivery.
func fixtureTripOutForDelivery(t *testing.T, orders ...*order.Order) *trip.Trip {
	t.Helper()
	tr := fixtureDraftTrip(t)
	for _, o := range orders {
		require.NoError(t, tr.AttachOrder(o.ID(), o.TotalAmount()))
	}
	require.NoError(t, tr.MarkReadyForPacking())
	require.NoError(t, tr.MarkPacked())
	require.NoError(t, tr.StartDelivery())
	return tr
}
