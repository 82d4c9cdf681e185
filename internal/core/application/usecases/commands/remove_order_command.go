package commands

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to take an order off a draft trip's
// manifest and return it to the pending-dispatch pool.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	tripID  kernel.TripID
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to remove an order from a trip.
func NewRemoveOrderCommand(tripID kernel.TripID, orderID kernel.OrderID) (RemoveOrderCommand, error) {
	removeCommand := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setTripID(tripID),
		removeCommand.setOrderID(orderID),
	); err != nil {
		return RemoveOrderCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrderCommandIsNotConstructed if validation fails.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// TripID returns the trip identifier.
func (c RemoveOrderCommand) TripID() kernel.TripID {
	return c.tripID
}

// OrderID returns the identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *RemoveOrderCommand) setTripID(tripID kernel.TripID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
