package commands

import (
	"context"
)

// RemoveOrderCommandHandler takes an order off a draft trip.
// The trip sheds the order from its manifest and the order returns to the
// Approved pool, both inside one transaction.
type RemoveOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order removal operations.
func NewRemoveOrderCommandHandler(uowFactory UoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order removal command.
// Only draft trips can shed orders; the trip aggregate enforces that along
// with manifest membership.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, command RemoveOrderCommand) error {
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

	tripRepo := uow.TripRepository()
	ordersRepo := uow.OrderRepository()

	tripAggregate, err := tripRepo.Get(ctx, command.TripID())
	if err != nil {
		return err
	}

	orderAggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = tripAggregate.DetachOrder(orderAggregate.ID(), orderAggregate.TotalAmount()); err != nil {
		return err
	}
	if err = orderAggregate.ReleaseFromTrip(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}
	if err = tripRepo.Update(ctx, tripAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
