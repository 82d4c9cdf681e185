package commands

import (
	"context"

	"tradelink/internal/core/domain/model/kernel"
)

// ReconcileTripCommandHandler re-derives a trip's order count and total
// amount from the orders on its manifest and overwrites the stored
// aggregates when they drifted.
type ReconcileTripCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileTripCommandHandler creates a handler for trip reconciliation operations.
func NewReconcileTripCommandHandler(uowFactory UoWFactory) ReconcileTripCommandHandler {
	return ReconcileTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip reconciliation command.
// The manifest itself is the source of truth for membership; only the derived
// count and amount are rewritten. Trips that already agree are left untouched.
func (h ReconcileTripCommandHandler) Handle(ctx context.Context, command ReconcileTripCommand) error {
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

	tripAggregate, err := tripRepo.Get(ctx, command.TripID())
	if err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetByIDs(ctx, tripAggregate.OrderIDs())
	if err != nil {
		return err
	}

	var total kernel.Money
	for _, o := range orders {
		total = total.Add(o.TotalAmount())
	}

	if tripAggregate.TotalOrders() == len(orders) && tripAggregate.TotalAmount() == total {
		return uow.Commit(ctx)
	}

	if err = tripAggregate.SetAggregates(len(orders), total); err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, tripAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
