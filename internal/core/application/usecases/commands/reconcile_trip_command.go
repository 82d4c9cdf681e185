package commands

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var ErrReconcileTripCommandIsNotConstructed = errors.New(
	"ReconcileTripCommand must be created via NewReconcileTripCommand constructor",
)

// ReconcileTripCommand represents a request to re-derive a trip's aggregates
// (order count and total amount) from its orders. A safety net for data that
// predates the lockstep manifest bookkeeping.
type ReconcileTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.TripID

	guard guard.ConstructorGuard
}

// NewReconcileTripCommand creates a command to reconcile a trip's aggregates.
func NewReconcileTripCommand(tripID kernel.TripID) (ReconcileTripCommand, error) {
	reconcileCommand := ReconcileTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reconcileCommand.setTripID(tripID); err != nil {
		return ReconcileTripCommand{}, err
	}

	return reconcileCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileTripCommandIsNotConstructed if validation fails.
func (c ReconcileTripCommand) Validate() error {
	return c.guard.Validate(ErrReconcileTripCommandIsNotConstructed)
}

// TripID returns the trip identifier.
func (c ReconcileTripCommand) TripID() kernel.TripID {
	return c.tripID
}

func (c *ReconcileTripCommand) setTripID(tripID kernel.TripID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}
