package queries_test

import (
	"testing"

	"tradelink/internal/core/application/usecases/queries"
	"tradelink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTripDetailsQuery(t *testing.T) {
	t.Run("should create query with valid trip id", func(t *testing.T) {
		tripID, err := kernel.TripIDFromString("trip_a1b2c3d4")
		require.NoError(t, err)

		query, err := queries.NewGetTripDetailsQuery(tripID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, tripID, query.TripID())
	})

	t.Run("should reject empty trip id", func(t *testing.T) {
		var tripID kernel.TripID

		_, err := queries.NewGetTripDetailsQuery(tripID)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero-value query", func(t *testing.T) {
		var query queries.GetTripDetailsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetTripDetailsQueryIsNotConstructed)
	})
}
