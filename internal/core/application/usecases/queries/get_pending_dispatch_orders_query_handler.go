package queries

import (
	"context"

	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingDispatchOrdersQueryHandler reads the dispatch pool from the
// database: every approved order with no trip assignment, oldest delivery
// date first so the backlog surfaces at the top.
type GetPendingDispatchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDispatchOrdersQueryHandler creates a handler for dispatch pool
// queries.
func NewGetPendingDispatchOrdersQueryHandler(db *gorm.DB) GetPendingDispatchOrdersQueryHandler {
	return GetPendingDispatchOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the pending dispatch pool.
func (h GetPendingDispatchOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDispatchOrdersQuery,
) ([]GetPendingDispatchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingDispatchOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_name,
			salesperson_name,
			date,
			total_items,
			total_amount,
			payment_method
		FROM orders
		WHERE status = ? AND trip_id IS NULL
		ORDER BY date, id
	`, order.Approved).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetPendingDispatchOrdersQueryResponse
		var rawID string
		var totalAmount int64

		err = rows.Scan(
			&rawID,
			&orderResp.CustomerID,
			&orderResp.CustomerName,
			&orderResp.SalespersonName,
			&orderResp.Date,
			&orderResp.TotalItems,
			&totalAmount,
			&orderResp.PaymentMethod,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.OrderIDFromString(rawID)
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		amount, amountErr := kernel.NewMoneyFromCents(totalAmount)
		if amountErr != nil {
			return nil, amountErr
		}
		orderResp.TotalAmount = amount

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
