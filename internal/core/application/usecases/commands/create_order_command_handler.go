package commands

import (
	"context"

	"tradelink/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists newly captured orders.
// Orders enter the system in Approved status and form the pending-dispatch pool.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the order aggregate, deriving its totals from the line items, and
// persists it within a transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(), command.CustomerName(),
		command.SalespersonID(), command.SalespersonName(),
		command.Date(),
		command.Items(),
		command.Discount(),
		command.PaymentMethod(),
		command.VATRequired(),
		command.GPS(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
