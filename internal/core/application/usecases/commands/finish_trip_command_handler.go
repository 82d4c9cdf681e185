package commands

import (
	"context"

	"tradelink/internal/core/domain/services"
)

// FinishTripCommandHandler closes out a trip that is out for delivery.
// Loads the trip and every manifest order inside one transaction, applies the
// close-out policy through the TripCloser domain service, and commits the
// changed orders together with the completed trip.
type FinishTripCommandHandler struct {
	uowFactory UoWFactory
	closer     services.TripCloser
}

// NewFinishTripCommandHandler creates a handler for trip close-out operations.
func NewFinishTripCommandHandler(uowFactory UoWFactory) FinishTripCommandHandler {
	return FinishTripCommandHandler{
		uowFactory: uowFactory,
		closer:     services.NewTripCloser(),
	}
}

// NewFinishTripCommandHandlerWithCloser creates a handler with an explicit
// TripCloser. Used by tests that pin the reschedule clock.
func NewFinishTripCommandHandlerWithCloser(
	uowFactory UoWFactory,
	closer services.TripCloser,
) FinishTripCommandHandler {
	return FinishTripCommandHandler{
		uowFactory: uowFactory,
		closer:     closer,
	}
}

// Handle processes the trip close-out command.
// A trip with no pending orders closes direct regardless of the requested
// method. Pending orders are cancelled as sales returns or rescheduled to the
// next day depending on the method; the trip always ends Completed.
func (h FinishTripCommandHandler) Handle(ctx context.Context, command FinishTripCommand) error {
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

	orders, err := ordersRepo.GetByIDs(ctx, tripAggregate.OrderIDs())
	if err != nil {
		return err
	}

	outcome, err := h.closer.Close(tripAggregate, orders, command.Method())
	if err != nil {
		return err
	}

	for _, o := range outcome.Pending {
		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = tripRepo.Update(ctx, tripAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
