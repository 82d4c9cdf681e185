package queries

import (
	"context"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/trip"

	"gorm.io/gorm"
)

// GetActiveTripsQueryHandler reads all not-yet-completed trips from the
// database, newest delivery date first.
type GetActiveTripsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveTripsQueryHandler creates a handler for active trip queries.
func NewGetActiveTripsQueryHandler(db *gorm.DB) GetActiveTripsQueryHandler {
	return GetActiveTripsQueryHandler{db: db}
}

// Handle executes the query and returns the active trips, optionally filtered
// by delivery person.
func (h GetActiveTripsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveTripsQuery,
) ([]GetActiveTripsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			date,
			delivery_person_id,
			delivery_person_name,
			vehicle_name,
			total_orders,
			total_amount,
			status
		FROM trips
		WHERE status != ?`
	args := []any{trip.Completed}

	if query.DeliveryPersonID() != "" {
		sql += ` AND delivery_person_id = ?`
		args = append(args, query.DeliveryPersonID())
	}
	sql += ` ORDER BY date DESC, created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]GetActiveTripsQueryResponse, 0)

	for rows.Next() {
		var tripResp GetActiveTripsQueryResponse
		var rawID string
		var totalAmount int64
		var rawStatus int

		err = rows.Scan(
			&rawID,
			&tripResp.Date,
			&tripResp.DeliveryPersonID,
			&tripResp.DeliveryPersonName,
			&tripResp.VehicleName,
			&tripResp.TotalOrders,
			&totalAmount,
			&rawStatus,
		)
		if err != nil {
			return nil, err
		}

		tripID, idErr := kernel.TripIDFromString(rawID)
		if idErr != nil {
			return nil, idErr
		}
		tripResp.ID = tripID

		amount, amountErr := kernel.NewMoneyFromCents(totalAmount)
		if amountErr != nil {
			return nil, amountErr
		}
		tripResp.TotalAmount = amount

		status := trip.Status(rawStatus)
		if statusErr := status.Validate(); statusErr != nil {
			return nil, statusErr
		}
		tripResp.Status = status.String()

		trips = append(trips, tripResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}
