package commands

import (
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/guard"
)

var (
	ErrCreateTripCommandIsNotConstructed = errors.New(
		"CreateTripCommand must be created via NewCreateTripCommand constructor",
	)
	ErrDeliveryPersonIDIsRequired = errors.New("delivery person id is required")
	ErrVehicleIDIsRequired        = errors.New("vehicle id is required")
)

// CreateTripCommand represents a request to open a new draft dispatch trip
// for a delivery person taking a vehicle out on a date.
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID             kernel.TripID
	date               kernel.DeliveryDate
	deliveryPersonID   string
	deliveryPersonName string
	vehicleID          string
	vehicleName        string

	guard guard.ConstructorGuard
}

// NewCreateTripCommand creates a command to open a draft trip.
// Validates the trip id, date, and that both the delivery person and the
// vehicle are identified.
func NewCreateTripCommand(
	tripID kernel.TripID,
	date kernel.DeliveryDate,
	deliveryPersonID, deliveryPersonName string,
	vehicleID, vehicleName string,
) (CreateTripCommand, error) {
	tripCommand := CreateTripCommand{
		deliveryPersonName: deliveryPersonName,
		vehicleName:        vehicleName,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tripCommand.setTripID(tripID),
		tripCommand.setDate(date),
		tripCommand.setDeliveryPersonID(deliveryPersonID),
		tripCommand.setVehicleID(vehicleID),
	); err != nil {
		return CreateTripCommand{}, err
	}

	return tripCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTripCommandIsNotConstructed if validation fails.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

// TripID returns the unique identifier for the trip.
func (c CreateTripCommand) TripID() kernel.TripID {
	return c.tripID
}

// Date returns the planned delivery date.
func (c CreateTripCommand) Date() kernel.DeliveryDate {
	return c.date
}

// DeliveryPersonID returns the delivery person identifier.
func (c CreateTripCommand) DeliveryPersonID() string {
	return c.deliveryPersonID
}

// DeliveryPersonName returns the delivery person display name.
func (c CreateTripCommand) DeliveryPersonName() string {
	return c.deliveryPersonName
}

// VehicleID returns the vehicle identifier.
func (c CreateTripCommand) VehicleID() string {
	return c.vehicleID
}

// VehicleName returns the vehicle display name.
func (c CreateTripCommand) VehicleName() string {
	return c.vehicleName
}

func (c *CreateTripCommand) setTripID(tripID kernel.TripID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *CreateTripCommand) setDate(date kernel.DeliveryDate) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *CreateTripCommand) setDeliveryPersonID(deliveryPersonID string) error {
	if deliveryPersonID == "" {
		return ErrDeliveryPersonIDIsRequired
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *CreateTripCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return ErrVehicleIDIsRequired
	}

	c.vehicleID = vehicleID
	return nil
}
