// Package http exposes the dispatch workflow as a JSON API over echo.
// Handlers translate requests into commands and queries and map domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"tradelink/internal/core/application/usecases/commands"
	"tradelink/internal/core/application/usecases/queries"
	"tradelink/internal/core/domain/model/kernel"
	"tradelink/internal/core/domain/model/order"
	"tradelink/internal/core/domain/model/trip"
	"tradelink/internal/core/domain/services"
	"tradelink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	createTripHandler   commands.CreateTripCommandHandler
	assignOrdersHandler commands.AssignOrdersCommandHandler
	removeOrderHandler  commands.RemoveOrderCommandHandler
	advanceTripHandler  commands.AdvanceTripCommandHandler
	finishTripHandler   commands.FinishTripCommandHandler

	getPendingDispatchOrdersHandler queries.GetPendingDispatchOrdersQueryHandler
	getActiveTripsHandler           queries.GetActiveTripsQueryHandler
	getTripDetailsHandler           queries.GetTripDetailsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createTripHandler commands.CreateTripCommandHandler,
	assignOrdersHandler commands.AssignOrdersCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	advanceTripHandler commands.AdvanceTripCommandHandler,
	finishTripHandler commands.FinishTripCommandHandler,
	getPendingDispatchOrdersHandler queries.GetPendingDispatchOrdersQueryHandler,
	getActiveTripsHandler queries.GetActiveTripsQueryHandler,
	getTripDetailsHandler queries.GetTripDetailsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		deliverOrderHandler:             deliverOrderHandler,
		cancelOrderHandler:              cancelOrderHandler,
		createTripHandler:               createTripHandler,
		assignOrdersHandler:             assignOrdersHandler,
		removeOrderHandler:              removeOrderHandler,
		advanceTripHandler:              advanceTripHandler,
		finishTripHandler:               finishTripHandler,
		getPendingDispatchOrdersHandler: getPendingDispatchOrdersHandler,
		getActiveTripsHandler:           getActiveTripsHandler,
		getTripDetailsHandler:           getTripDetailsHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.POST("/orders/:orderID/deliver", s.DeliverOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/trips", s.CreateTrip)
	api.GET("/trips", s.GetActiveTrips)
	api.GET("/trips/:tripID", s.GetTripDetails)
	api.POST("/trips/:tripID/orders", s.AssignOrders)
	api.DELETE("/trips/:tripID/orders/:orderID", s.RemoveOrder)
	api.POST("/trips/:tripID/advance", s.AdvanceTrip)
	api.POST("/trips/:tripID/finish", s.FinishTrip)
}

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one order line in the create-order request.
type OrderItemRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	Rate        int64  `json:"rate"`
	Discount    int64  `json:"discount"`
	Scheme      string `json:"scheme,omitempty"`
}

// CreateOrderRequest captures a new order. Monetary amounts are integer cents.
type CreateOrderRequest struct {
	ID              string             `json:"id"`
	CustomerID      string             `json:"customer_id"`
	CustomerName    string             `json:"customer_name"`
	SalespersonID   string             `json:"salesperson_id"`
	SalespersonName string             `json:"salesperson_name"`
	Date            string             `json:"date"`
	Items           []OrderItemRequest `json:"items"`
	Discount        int64              `json:"discount"`
	PaymentMethod   string             `json:"payment_method"`
	VATRequired     bool               `json:"vat_required"`
	GPS             string             `json:"gps,omitempty"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.OrderIDFromString(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	date, err := kernel.ParseDeliveryDate(req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	discount, err := kernel.NewMoneyFromCents(req.Discount)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		rate, rateErr := kernel.NewMoneyFromCents(line.Rate)
		if rateErr != nil {
			return badRequest(ctx, "Invalid order data: "+rateErr.Error())
		}
		lineDiscount, discountErr := kernel.NewMoneyFromCents(line.Discount)
		if discountErr != nil {
			return badRequest(ctx, "Invalid order data: "+discountErr.Error())
		}

		item, itemErr := order.NewItem(line.ProductID, line.ProductName,
			line.Qty, rate, lineDiscount, line.Scheme)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order data: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID,
		req.CustomerID, req.CustomerName,
		req.SalespersonID, req.SalespersonName,
		date, items, discount, req.PaymentMethod, req.VATRequired, req.GPS)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// PendingOrderResponse is one row of the dispatch pool listing.
type PendingOrderResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	SalespersonName string `json:"salesperson_name"`
	Date            string `json:"date"`
	TotalItems      int    `json:"total_items"`
	TotalAmount     int64  `json:"total_amount"`
	PaymentMethod   string `json:"payment_method"`
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingDispatchOrdersQuery()

	orders, err := s.getPendingDispatchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	response := make([]PendingOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = PendingOrderResponse{
			ID:              o.ID.String(),
			CustomerID:      o.CustomerID,
			CustomerName:    o.CustomerName,
			SalespersonName: o.SalespersonName,
			Date:            o.Date,
			TotalItems:      o.TotalItems,
			TotalAmount:     o.TotalAmount.Cents(),
			PaymentMethod:   o.PaymentMethod,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeliverOrder handles POST /api/v1/orders/:orderID/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateTripRequest opens a new draft trip for a delivery run.
type CreateTripRequest struct {
	Date               string `json:"date"`
	DeliveryPersonID   string `json:"delivery_person_id"`
	DeliveryPersonName string `json:"delivery_person_name"`
	VehicleID          string `json:"vehicle_id"`
	VehicleName        string `json:"vehicle_name"`
}

// CreateTripResponse returns the generated trip identifier.
type CreateTripResponse struct {
	ID string `json:"id"`
}

// CreateTrip handles POST /api/v1/trips.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var req CreateTripRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	date, err := kernel.ParseDeliveryDate(req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid trip data: "+err.Error())
	}

	tripID := kernel.NewTripID()
	cmd, err := commands.NewCreateTripCommand(tripID, date,
		req.DeliveryPersonID, req.DeliveryPersonName,
		req.VehicleID, req.VehicleName)
	if err != nil {
		return badRequest(ctx, "Invalid trip data: "+err.Error())
	}

	if handleErr := s.createTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateTripResponse{ID: tripID.String()})
}

// ActiveTripResponse is one row of the active trips listing.
type ActiveTripResponse struct {
	ID                 string `json:"id"`
	Date               string `json:"date"`
	DeliveryPersonID   string `json:"delivery_person_id"`
	DeliveryPersonName string `json:"delivery_person_name"`
	VehicleName        string `json:"vehicle_name"`
	TotalOrders        int    `json:"total_orders"`
	TotalAmount        int64  `json:"total_amount"`
	Status             string `json:"status"`
}

// GetActiveTrips handles GET /api/v1/trips. An optional delivery_person_id
// query parameter narrows the listing.
func (s *Server) GetActiveTrips(ctx echo.Context) error {
	query := queries.NewGetActiveTripsQuery(ctx.QueryParam("delivery_person_id"))

	trips, err := s.getActiveTripsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	response := make([]ActiveTripResponse, len(trips))
	for i, t := range trips {
		response[i] = ActiveTripResponse{
			ID:                 t.ID.String(),
			Date:               t.Date,
			DeliveryPersonID:   t.DeliveryPersonID,
			DeliveryPersonName: t.DeliveryPersonName,
			VehicleName:        t.VehicleName,
			TotalOrders:        t.TotalOrders,
			TotalAmount:        t.TotalAmount.Cents(),
			Status:             t.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TripOrderResponse is one member order of the trip details view.
type TripOrderResponse struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customer_name"`
	SalespersonName string `json:"salesperson_name"`
	TotalItems      int    `json:"total_items"`
	TotalAmount     int64  `json:"total_amount"`
	Status          string `json:"status"`
	Remarks         string `json:"remarks,omitempty"`
}

// TripDetailsResponse is the full trip details view.
type TripDetailsResponse struct {
	ID                 string              `json:"id"`
	Date               string              `json:"date"`
	DeliveryPersonID   string              `json:"delivery_person_id"`
	DeliveryPersonName string              `json:"delivery_person_name"`
	VehicleID          string              `json:"vehicle_id"`
	VehicleName        string              `json:"vehicle_name"`
	TotalOrders        int                 `json:"total_orders"`
	TotalAmount        int64               `json:"total_amount"`
	Status             string              `json:"status"`
	Orders             []TripOrderResponse `json:"orders"`
	DeliveredCount     int                 `json:"delivered_count"`
	PendingCount       int                 `json:"pending_count"`
}

// GetTripDetails handles GET /api/v1/trips/:tripID.
func (s *Server) GetTripDetails(ctx echo.Context) error {
	tripID, err := kernel.TripIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	query, err := queries.NewGetTripDetailsQuery(tripID)
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	details, err := s.getTripDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	orders := make([]TripOrderResponse, len(details.Orders))
	for i, o := range details.Orders {
		orders[i] = TripOrderResponse{
			ID:              o.ID.String(),
			CustomerName:    o.CustomerName,
			SalespersonName: o.SalespersonName,
			TotalItems:      o.TotalItems,
			TotalAmount:     o.TotalAmount.Cents(),
			Status:          o.Status,
			Remarks:         o.Remarks,
		}
	}

	return ctx.JSON(http.StatusOK, TripDetailsResponse{
		ID:                 details.ID.String(),
		Date:               details.Date,
		DeliveryPersonID:   details.DeliveryPersonID,
		DeliveryPersonName: details.DeliveryPersonName,
		VehicleID:          details.VehicleID,
		VehicleName:        details.VehicleName,
		TotalOrders:        details.TotalOrders,
		TotalAmount:        details.TotalAmount.Cents(),
		Status:             details.Status,
		Orders:             orders,
		DeliveredCount:     details.DeliveredCount,
		PendingCount:       details.PendingCount,
	})
}

// AssignOrdersRequest adds orders to a draft trip's manifest.
type AssignOrdersRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// AssignOrders handles POST /api/v1/trips/:tripID/orders.
func (s *Server) AssignOrders(ctx echo.Context) error {
	tripID, err := kernel.TripIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	var req AssignOrdersRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.OrderID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		orderID, idErr := kernel.OrderIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid order id: "+idErr.Error())
		}
		orderIDs = append(orderIDs, orderID)
	}

	cmd, err := commands.NewAssignOrdersCommand(tripID, orderIDs)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if handleErr := s.assignOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveOrder handles DELETE /api/v1/trips/:tripID/orders/:orderID.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	tripID, err := kernel.TripIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderCommand(tripID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid removal: "+err.Error())
	}

	if handleErr := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceTrip handles POST /api/v1/trips/:tripID/advance.
func (s *Server) AdvanceTrip(ctx echo.Context) error {
	tripID, err := kernel.TripIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	cmd, err := commands.NewAdvanceTripCommand(tripID)
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	if handleErr := s.advanceTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// FinishTripRequest selects the close-out method for a trip.
type FinishTripRequest struct {
	Method string `json:"method"`
}

// FinishTrip handles POST /api/v1/trips/:tripID/finish.
func (s *Server) FinishTrip(ctx echo.Context) error {
	tripID, err := kernel.TripIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	var req FinishTripRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := services.CloseMethodFromString(req.Method)
	if err != nil {
		return badRequest(ctx, "Invalid close method: "+err.Error())
	}

	cmd, err := commands.NewFinishTripCommand(tripID, method)
	if err != nil {
		return badRequest(ctx, "Invalid finish request: "+err.Error())
	}

	if handleErr := s.finishTripHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return translateError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// translateError maps domain errors from command and query handlers onto
// HTTP status codes.
func translateError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, trip.ErrTripIsNotDraft),
		errors.Is(err, trip.ErrOrderAlreadyOnTrip),
		errors.Is(err, trip.ErrOrderNotOnTrip),
		errors.Is(err, commands.ErrTripManifestIsEmpty),
		errors.Is(err, commands.ErrTripMustBeFinished):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
