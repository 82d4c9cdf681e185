package commands_test

import (
	"context"

	"errors"
	"testing"
	"time"

	"tradelink/internal/core/application/usecases/commands"
	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/core/domain/model/trip"
	"tradelink/internal/core/domain/services"
	"tradelink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func finishTripCommand(t *testing.T, method services.CloseMethod) commands.FinishTripCommand {
	t.Helper()
	cmd, err := commands.NewFinishTripCommand(fixtureTripID(t), method)
	require.NoError(t, err)
	return cmd
}

func finishTripHandler(factory commands.UoWFactory) commands.FinishTripCommandHandler {
	closer := services.NewTripCloserWithClock(func() time.Time {
		return time.Date(2026, 1, 15, 18, 0, 0, 0, time.Local)
	})
	return commands.NewFinishTripCommandHandlerWithCloser(factory, closer)
}

func TestFinishTripCommandHandler_Handle_Direct(t *testing.T) {
	ctx := context.Background()

	delivered := fixtureDispatchedOrder(t, 1)
	require.NoError(t, delivered.Deliver())
	pending := fixtureDispatchedOrder(t, 2)
	testTrip := fixtureTripOutForDelivery(t, delivered, pending)

	orderRepo := new(MockOrderRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, fixtureTripID(t)).Return(testTrip, nil).Once(),
		orderRepo.On("GetByIDs", ctx, testTrip.OrderIDs()).
			Return([]*order.Order{delivered, pending}, nil).Once(),
		tripRepo.On("Update", ctx, testTrip).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := finishTripHandler(factory).Handle(ctx, finishTripCommand(t, services.CloseDirect))

	require.NoError(t, err)
	assert.Equal(t, trip.Completed, testTrip.Status())
	assert.Equal(t, order.Dispatched, pending.Status())
	// no order writes on the direct path
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertExpectations(t)
}

func TestFinishTripCommandHandler_Handle_SalesReturn(t *testing.T) {
	ctx := context.Background()

	delivered := fixtureDispatchedOrder(t, 1)
	require.NoError(t, delivered.Deliver())
	pending := fixtureDispatchedOrder(t, 2)
	testTrip := fixtureTripOutForDelivery(t, delivered, pending)

	orderRepo := new(MockOrderRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, fixtureTripID(t)).Return(testTrip, nil).Once(),
		orderRepo.On("GetByIDs", ctx, testTrip.OrderIDs()).
			Return([]*order.Order{delivered, pending}, nil).Once(),
		orderRepo.On("Update", ctx, pending).Return(nil).Once(),
		tripRepo.On("Update", ctx, testTrip).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := finishTripHandler(factory).Handle(ctx, finishTripCommand(t, services.CloseSalesReturn))

	require.NoError(t, err)
	assert.Equal(t, trip.Completed, testTrip.Status())
	assert.Equal(t, order.Cancelled, pending.Status())
	assert.Contains(t, pending.Remarks(), "Sales Return")
	assert.Equal(t, order.Delivered, delivered.Status())
	uow.AssertExpectations(t)
}

func TestFinishTripCommandHandler_Handle_Reschedule(t *testing.T) {
	ctx := context.Background()

	delivered := fixtureDispatchedOrder(t, 1)
	require.NoError(t, delivered.Deliver())
	pending := fixtureDispatchedOrder(t, 2)
	testTrip := fixtureTripOutForDelivery(t, delivered, pending)

	orderRepo := new(MockOrderRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, fixtureTripID(t)).Return(testTrip, nil).Once(),
		orderRepo.On("GetByIDs", ctx, testTrip.OrderIDs()).
			Return([]*order.Order{delivered, pending}, nil).Once(),
		orderRepo.On("Update", ctx, pending).Return(nil).Once(),
		tripRepo.On("Update", ctx, testTrip).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := finishTripHandler(factory).Handle(ctx, finishTripCommand(t, services.CloseReschedule))

	require.NoError(t, err)
	assert.Equal(t, trip.Completed, testTrip.Status())

	// pending order moved off the trip to the next day
	assert.Equal(t, order.Approved, pending.Status())
	assert.Nil(t, pending.Trip())
	assert.Equal(t, "2026-01-16", pending.Date().String())

	// manifest rewritten to the delivered subset
	assert.Equal(t, []kernel.OrderID{delivered.ID()}, testTrip.OrderIDs())
	assert.Equal(t, 1, testTrip.TotalOrders())
	assert.Equal(t, delivered.TotalAmount(), testTrip.TotalAmount())
	uow.AssertExpectations(t)
}

func TestFinishTripCommandHandler_Handle_NoPendingForcesDirect(t *testing.T) {
	ctx := context.Background()

	delivered := fixtureDispatchedOrder(t, 1)
	require.NoError(t, delivered.Deliver())
	testTrip := fixtureTripOutForDelivery(t, delivered)

	orderRepo := new(MockOrderRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, fixtureTripID(t)).Return(testTrip, nil).Once(),
		orderRepo.On("GetByIDs", ctx, testTrip.OrderIDs()).
			Return([]*order.Order{delivered}, nil).Once(),
		tripRepo.On("Update", ctx, testTrip).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := finishTripHandler(factory).Handle(ctx, finishTripCommand(t, services.CloseReschedule))

	require.NoError(t, err)
	assert.Equal(t, trip.Completed, testTrip.Status())
	// manifest untouched, nothing rescheduled
	assert.Equal(t, 1, testTrip.TotalOrders())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestFinishTripCommandHandler_Handle_TripNotFound(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, fixtureTripID(t)).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := finishTripHandler(factory).Handle(ctx, finishTripCommand(t, services.CloseDirect))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestFinishTripCommandHandler_Handle_TripNotOutForDelivery(t *testing.T) {
	ctx := context.Background()

	pending := fixtureDispatchedOrder(t, 1)
	testTrip := fixtureDraftTrip(t)
	require.NoError(t, testTrip.AttachOrder(pending.ID(), pending.TotalAmount()))

	orderRepo := new(MockOrderRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, fixtureTripID(t)).Return(testTrip, nil).Once(),
		orderRepo.On("GetByIDs", ctx, testTrip.OrderIDs()).
			Return([]*order.Order{pending}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := finishTripHandler(factory).Handle(ctx, finishTripCommand(t, services.CloseSalesReturn))

	require.Error(t, err)
	assert.Equal(t, trip.Draft, testTrip.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestFinishTripCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := context.Background()

	pending := fixtureDispatchedOrder(t, 1)
	testTrip := fixtureTripOutForDelivery(t, pending)

	orderRepo := new(MockOrderRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		tripRepo.On("Get", ctx, fixtureTripID(t)).Return(testTrip, nil).Once(),
		orderRepo.On("GetByIDs", ctx, testTrip.OrderIDs()).
			Return([]*order.Order{pending}, nil).Once(),
		orderRepo.On("Update", ctx, pending).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := finishTripHandler(factory).Handle(ctx, finishTripCommand(t, services.CloseSalesReturn))

	require.Error(t, err)
	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
