package commands

import (
	"context"

	"tradelink/internal/core/domain/model/trip"
)

// CancelOrderCommandHandler cancels a non-terminal order.
// An order sitting on a draft trip is taken off the manifest first so the
// trip aggregates stay honest; once a trip left the draft stage the order
// keeps its trip reference for the audit trail.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	orderAggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if tripID := orderAggregate.Trip(); tripID != nil {
		tripRepo := uow.TripRepository()

		tripAggregate, err := tripRepo.Get(ctx, *tripID)
		if err != nil {
			return err
		}

		if tripAggregate.Status() == trip.Draft {
			if err = tripAggregate.DetachOrder(orderAggregate.ID(), orderAggregate.TotalAmount()); err != nil {
				return err
			}
			if err = orderAggregate.ReleaseFromTrip(); err != nil {
				return err
			}
			if err = tripRepo.Update(ctx, tripAggregate); err != nil {
				return err
			}
		}
	}

	if err = orderAggregate.Cancel(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
