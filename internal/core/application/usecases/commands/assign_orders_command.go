package commands

import (
	"errors"
	"fmt"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var (
	ErrAssignOrdersCommandIsNotConstructed = errors.New(
		"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// AssignOrdersCommand represents a request to put a batch of approved orders
// on a draft trip's manifest. The whole batch succeeds or fails together.
//
// Example:
//
//	cmd, err := NewAssignOrdersCommand(tripID, orderIDs)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	tripID   kernel.TripID
	orderIDs []kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command to assign orders to a trip.
// The order id list must be non-empty, valid, and free of duplicates.
func NewAssignOrdersCommand(tripID kernel.TripID, orderIDs []kernel.OrderID) (AssignOrdersCommand, error) {
	assignCommand := AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setTripID(tripID),
		assignCommand.setOrderIDs(orderIDs),
	); err != nil {
		return AssignOrdersCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrdersCommandIsNotConstructed if validation fails.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// TripID returns the target trip identifier.
func (c AssignOrdersCommand) TripID() kernel.TripID {
	return c.tripID
}

// OrderIDs returns the identifiers of the orders to assign.
func (c AssignOrdersCommand) OrderIDs() []kernel.OrderID {
	return c.orderIDs
}

func (c *AssignOrdersCommand) setTripID(tripID kernel.TripID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *AssignOrdersCommand) setOrderIDs(orderIDs []kernel.OrderID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	seen := make(map[kernel.OrderID]struct{}, len(orderIDs))
	for _, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return err
		}
		if _, ok := seen[orderID]; ok {
			return fmt.Errorf("duplicate order id %s", orderID)
		}
		seen[orderID] = struct{}{}
	}

	c.orderIDs = orderIDs
	return nil
}
