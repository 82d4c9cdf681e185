package commands

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var ErrAdvanceTripCommandIsNotConstructed = errors.New(
	"AdvanceTripCommand must be created via NewAdvanceTripCommand constructor",
)

// AdvanceTripCommand represents a request to move a trip one step forward in
// the packing workflow: Draft -> ReadyForPacking -> Packed -> OutForDelivery.
// Completing the trip goes through FinishTripCommand instead.
type AdvanceTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.TripID

	guard guard.ConstructorGuard
}

// NewAdvanceTripCommand creates a command to advance a trip's workflow stage.
func NewAdvanceTripCommand(tripID kernel.TripID) (AdvanceTripCommand, error) {
	advanceCommand := AdvanceTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := advanceCommand.setTripID(tripID); err != nil {
		return AdvanceTripCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceTripCommandIsNotConstructed if validation fails.
func (c AdvanceTripCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTripCommandIsNotConstructed)
}

// TripID returns the trip identifier.
func (c AdvanceTripCommand) TripID() kernel.TripID {
	return c.tripID
}

func (c *AdvanceTripCommand) setTripID(tripID kernel.TripID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}
