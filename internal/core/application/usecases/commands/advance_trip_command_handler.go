package commands

import (
	"context"
	"errors"

	"tradelink/internal/core/domain/model/trip"
)

var (
	// ErrTripManifestIsEmpty is returned when advancing a draft trip that has
	// no orders on it.
	ErrTripManifestIsEmpty = errors.New("trip has no orders to pack")

	// ErrTripMustBeFinished is returned when advancing a trip that is out for
	// delivery; closing it requires a close method and goes through FinishTrip.
	ErrTripMustBeFinished = errors.New("trip is out for delivery and must be finished with a close method")
)

// AdvanceTripCommandHandler moves a trip one step forward in the packing
// workflow. When the trip goes out for delivery, every order on the manifest
// is forced to Dispatched in the same transaction, repairing any order that
// fell out of step.
type AdvanceTripCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceTripCommandHandler creates a handler for trip advancement operations.
func NewAdvanceTripCommandHandler(uowFactory UoWFactory) AdvanceTripCommandHandler {
	return AdvanceTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip advancement command.
func (h AdvanceTripCommandHandler) Handle(ctx context.Context, command AdvanceTripCommand) error {
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

	switch tripAggregate.Status() {
	case trip.Draft:
		if tripAggregate.TotalOrders() == 0 {
			return ErrTripManifestIsEmpty
		}
		err = tripAggregate.MarkReadyForPacking()
	case trip.ReadyForPacking:
		err = tripAggregate.MarkPacked()
	case trip.Packed:
		err = tripAggregate.StartDelivery()
		if err == nil {
			err = h.forceDispatchManifest(ctx, uow, tripAggregate)
		}
	case trip.OutForDelivery:
		return ErrTripMustBeFinished
	default:
		_, err = tripAggregate.Status().Next()
	}
	if err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, tripAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// forceDispatchManifest re-dispatches every order on the manifest that is not
// yet in a terminal state. Orders already dispatched pass through unchanged.
func (h AdvanceTripCommandHandler) forceDispatchManifest(
	ctx context.Context,
	uow UoW,
	tripAggregate *trip.Trip,
) error {
	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetByIDs(ctx, tripAggregate.OrderIDs())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.Status().IsTerminal() {
			continue
		}
		if err = o.AssignToTrip(tripAggregate.ID()); err != nil {
			return err
		}
		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return nil
}
