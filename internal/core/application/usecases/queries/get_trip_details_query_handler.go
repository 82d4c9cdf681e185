package queries

import (
	"context"
	"database/sql"
	"errors"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/core/domain/model/trip"
	"tradelink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTripDetailsQueryHandler reads one trip and its member orders from the
// database. The delivered/pending breakdown is derived from the member order
// statuses, not from the stored trip aggregates.
type GetTripDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetTripDetailsQueryHandler creates a handler for trip detail queries.
func NewGetTripDetailsQueryHandler(db *gorm.DB) GetTripDetailsQueryHandler {
	return GetTripDetailsQueryHandler{db: db}
}

// Handle executes the query and returns the trip details view.
func (h GetTripDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetTripDetailsQuery,
) (GetTripDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTripDetailsQueryResponse{}, err
	}

	resp, err := h.readTrip(ctx, query.TripID())
	if err != nil {
		return GetTripDetailsQueryResponse{}, err
	}

	orders, delivered, pending, err := h.readTripOrders(ctx, query.TripID())
	if err != nil {
		return GetTripDetailsQueryResponse{}, err
	}

	resp.Orders = orders
	resp.DeliveredCount = delivered
	resp.PendingCount = pending
	return resp, nil
}

func (h GetTripDetailsQueryHandler) readTrip(
	ctx context.Context,
	tripID kernel.TripID,
) (GetTripDetailsQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			date,
			delivery_person_id,
			delivery_person_name,
			vehicle_id,
			vehicle_name,
			total_orders,
			total_amount,
			status
		FROM trips
		WHERE id = ?
	`, tripID.String()).Row()

	var resp GetTripDetailsQueryResponse
	var rawID string
	var totalAmount int64
	var rawStatus int

	err := row.Scan(
		&rawID,
		&resp.Date,
		&resp.DeliveryPersonID,
		&resp.DeliveryPersonName,
		&resp.VehicleID,
		&resp.VehicleName,
		&resp.TotalOrders,
		&totalAmount,
		&rawStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetTripDetailsQueryResponse{}, errs.NewObjectNotFoundError("trip", tripID.String())
		}
		return GetTripDetailsQueryResponse{}, err
	}

	id, err := kernel.TripIDFromString(rawID)
	if err != nil {
		return GetTripDetailsQueryResponse{}, err
	}
	resp.ID = id

	amount, err := kernel.NewMoneyFromCents(totalAmount)
	if err != nil {
		return GetTripDetailsQueryResponse{}, err
	}
	resp.TotalAmount = amount

	status := trip.Status(rawStatus)
	if err := status.Validate(); err != nil {
		return GetTripDetailsQueryResponse{}, err
	}
	resp.Status = status.String()

	return resp, nil
}

func (h GetTripDetailsQueryHandler) readTripOrders(
	ctx context.Context,
	tripID kernel.TripID,
) ([]TripOrderResponse, int, int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			salesperson_name,
			total_items,
			total_amount,
			status,
			remarks
		FROM orders
		WHERE trip_id = ?
		ORDER BY id
	`, tripID.String()).Rows()
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	orders := make([]TripOrderResponse, 0)
	var delivered, pending int

	for rows.Next() {
		var orderResp TripOrderResponse
		var rawID string
		var totalAmount int64
		var rawStatus int

		err = rows.Scan(
			&rawID,
			&orderResp.CustomerName,
			&orderResp.SalespersonName,
			&orderResp.TotalItems,
			&totalAmount,
			&rawStatus,
			&orderResp.Remarks,
		)
		if err != nil {
			return nil, 0, 0, err
		}

		orderID, idErr := kernel.OrderIDFromString(rawID)
		if idErr != nil {
			return nil, 0, 0, idErr
		}
		orderResp.ID = orderID

		amount, amountErr := kernel.NewMoneyFromCents(totalAmount)
		if amountErr != nil {
			return nil, 0, 0, amountErr
		}
		orderResp.TotalAmount = amount

		status := order.Status(rawStatus)
		if statusErr := status.Validate(); statusErr != nil {
			return nil, 0, 0, statusErr
		}
		orderResp.Status = status.String()

		switch status {
		case order.Delivered:
			delivered++
		case order.Dispatched:
			pending++
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	return orders, delivered, pending, nil
}
