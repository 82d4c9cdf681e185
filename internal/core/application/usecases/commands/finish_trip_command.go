package commands

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/services"
	"tradelink/internal/pkg/guard"
)

var ErrFinishTripCommandIsNotConstructed = errors.New(
	"FinishTripCommand must be created via NewFinishTripCommand constructor",
)

// FinishTripCommand represents a request to close out a trip that is out for
// delivery, choosing how its undelivered orders are handled.
//
// Example:
//
//	method, _ := services.CloseMethodFromString("reschedule")
//	cmd, err := NewFinishTripCommand(tripID, method)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("close-out failed: %w", err)
//	}
type FinishTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.TripID
	method services.CloseMethod

	guard guard.ConstructorGuard
}

// NewFinishTripCommand creates a command to finish a trip with the given
// close method.
func NewFinishTripCommand(tripID kernel.TripID, method services.CloseMethod) (FinishTripCommand, error) {
	finishCommand := FinishTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		finishCommand.setTripID(tripID),
		finishCommand.setMethod(method),
	); err != nil {
		return FinishTripCommand{}, err
	}

	return finishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinishTripCommandIsNotConstructed if validation fails.
func (c FinishTripCommand) Validate() error {
	return c.guard.Validate(ErrFinishTripCommandIsNotConstructed)
}

// TripID returns the trip identifier.
func (c FinishTripCommand) TripID() kernel.TripID {
	return c.tripID
}

// Method returns the requested close method.
func (c FinishTripCommand) Method() services.CloseMethod {
	return c.method
}

func (c *FinishTripCommand) setTripID(tripID kernel.TripID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *FinishTripCommand) setMethod(method services.CloseMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
