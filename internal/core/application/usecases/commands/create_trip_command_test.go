package commands_test

import (
	"testing"

	"tradelink/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTripCommand(t *testing.T) {
	t.Run("should create command with valid params", func(t *testing.T) {
		cmd, err := commands.NewCreateTripCommand(fixtureTripID(t), fixtureDate(t),
			"dp-1", "Suresh", "veh-1", "Ba 2 Kha 1234")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, fixtureTripID(t), cmd.TripID())
		assert.Equal(t, "dp-1", cmd.DeliveryPersonID())
		assert.Equal(t, "veh-1", cmd.VehicleID())
	})

	t.Run("should require delivery person id", func(t *testing.T) {
		_, err := commands.NewCreateTripCommand(fixtureTripID(t), fixtureDate(t),
			"", "Suresh", "veh-1", "Ba 2 Kha 1234")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDeliveryPersonIDIsRequired)
	})

	t.Run("should require vehicle id", func(t *testing.T) {
		_, err := commands.NewCreateTripCommand(fixtureTripID(t), fixtureDate(t),
			"dp-1", "Suresh", "", "Ba 2 Kha 1234")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrVehicleIDIsRequired)
	})

	t.Run("should reject malformed trip id", func(t *testing.T) {
		_, err := commands.NewCreateTripCommand("not-a-trip-id", fixtureDate(t),
			"dp-1", "Suresh", "veh-1", "Ba 2 Kha 1234")

		require.Error(t, err)
	})

	t.Run("should fail validation for zero-value command", func(t *testing.T) {
		var cmd commands.CreateTripCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreateTripCommandIsNotConstructed)
	})
}
