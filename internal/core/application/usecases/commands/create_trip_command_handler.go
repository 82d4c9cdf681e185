package commands

import (
	"context"

	"tradelink/internal/core/domain/model/trip"
)

// CreateTripCommandHandler persists newly opened draft trips.
type CreateTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewCreateTripCommandHandler creates a handler for trip creation operations.
func NewCreateTripCommandHandler(uowFactory TripUoWFactory) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip creation command.
// Builds a draft trip with an empty manifest and persists it within a transaction.
func (h CreateTripCommandHandler) Handle(ctx context.Context, command CreateTripCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newTrip, err := trip.NewTrip(
		command.TripID(),
		command.Date(),
		command.DeliveryPersonID(), command.DeliveryPersonName(),
		command.VehicleID(), command.VehicleName(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TripRepository().Add(ctx, newTrip); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
