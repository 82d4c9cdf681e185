package kernel_test

import (
	"fmt"
	"strings"
	"testing"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should format date prefix and padded sequence", func(t *testing.T) {
		date, err := kernel.ParseDeliveryDate("2026-08-29")
		require.NoError(t, err)

		id := kernel.NewOrderID(date, 42)

		assert.Equal(t, "ORD-20260829-0042", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should not truncate large sequence numbers", func(t *testing.T) {
		date, err := kernel.ParseDeliveryDate("2026-01-02")
		require.NoError(t, err)

		id := kernel.NewOrderID(date, 12345)

		assert.Equal(t, "ORD-20260102-12345", id.String())
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should accept canonical ids", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-20260829-0001")

		require.NoError(t, err)
		assert.Equal(t, "ORD-20260829-0001", id.String())
	})

	t.Run("should accept legacy imported ids", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("INV/2024/0193")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject whitespace", func(t *testing.T) {
		for _, raw := range []string{"ORD 1", "ORD\t1", "ORD\n1"} {
			_, err := kernel.OrderIDFromString(raw)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.OrderIDFromString("ORD-20260829-0001")
	require.NoError(t, err)
	b, err := kernel.OrderIDFromString("ORD-20260829-0002")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}

func TestNewTripID(t *testing.T) {
	t.Run("should generate prefixed id", func(t *testing.T) {
		id := kernel.NewTripID()

		assert.True(t, strings.HasPrefix(id.String(), kernel.TripIDPrefix))
		assert.Len(t, id.String(), len(kernel.TripIDPrefix)+8)
		require.NoError(t, id.Validate())
	})

	t.Run("should generate distinct ids", func(t *testing.T) {
		seen := make(map[kernel.TripID]bool)
		for i := 0; i < 100; i++ {
			id := kernel.NewTripID()
			assert.False(t, seen[id], "duplicate trip id %s", id)
			seen[id] = true
		}
	})
}

func TestTripIDFromString(t *testing.T) {
	t.Run("should accept prefixed ids", func(t *testing.T) {
		id, err := kernel.TripIDFromString("trip_550e8400")

		require.NoError(t, err)
		assert.Equal(t, "trip_550e8400", id.String())
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		testCases := []struct {
			name string
			raw  string
		}{
			{"empty string", ""},
			{"missing prefix", "550e8400"},
			{"prefix only", "trip_"},
			{"wrong prefix", "order_550e8400"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.TripIDFromString(tc.raw)
				require.Error(t, err)
			})
		}
	})
}

func TestTripID_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var id kernel.TripID

		err := id.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unprefixed value", func(t *testing.T) {
		id := kernel.TripID("abc123")

		err := id.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), fmt.Sprintf("%s<suffix>", kernel.TripIDPrefix))
	})
}
