package commands

import (
	"context"
	"fmt"

	"tradelink/internal/core/domain/model/order"
)

// AssignOrdersCommandHandler puts approved orders on a draft trip.
// Loads the trip and every order inside one transaction, moves each order to
// Dispatched, grows the trip manifest, and commits everything together. Any
// rejected order aborts the whole batch.
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrdersCommandHandler creates a handler for order assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command.
// The trip must be a draft and every order approved; duplicates against the
// existing manifest are rejected by the trip aggregate.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, command AssignOrdersCommand) error {
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

	orders, err := ordersRepo.GetByIDs(ctx, command.OrderIDs())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.Status() != order.Approved {
			return fmt.Errorf("order %s is %s, only approved orders can be assigned",
				o.ID(), o.Status())
		}

		if err = tripAggregate.AttachOrder(o.ID(), o.TotalAmount()); err != nil {
			return err
		}
		if err = o.AssignToTrip(tripAggregate.ID()); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = tripRepo.Update(ctx, tripAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
