package http

import (
	"net/http"
	"strconv"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/orders/create.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if !req.hasRequiredSections() {
		return respondMessage(c, http.StatusBadRequest, msgMissingOrderFields)
	}

	params, err := req.toParams()
	if err != nil {
		return s.respondError(c, err, "create order", msgInternalServerError)
	}

	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return s.respondError(c, err, "create order", msgInternalServerError)
	}

	ctx := c.Request().Context()
	orderID, err := s.handlers.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return s.respondError(c, err, "create order", msgInternalServerError)
	}

	s.metrics.OrderCreated(ctx)
	return c.JSON(http.StatusCreated, orderCreatedResponse{Message: msgOrderCreated, OrderID: orderID})
}

// GetCustomerOrders handles GET /api/orders/all?customerId=.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("customerId"))
	if raw == "" {
		return respondMessage(c, http.StatusBadRequest, msgMissingCustomerID)
	}

	customerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid customerId")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return s.respondError(c, err, "get customer orders", "Failed to fetch orders")
	}

	orders, err := s.handlers.CustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err, "get customer orders", "Failed to fetch orders")
	}

	return c.JSON(http.StatusOK, orders)
}

// GetPendingOrders handles GET /api/orders/pending.
func (s *Server) GetPendingOrders(c echo.Context) error {
	orders, err := s.handlers.PendingOrders.Handle(c.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.respondError(c, err, "get pending orders", "Failed to fetch pending orders")
	}

	return c.JSON(http.StatusOK, orders)
}

// GetAcceptedOrders handles GET /api/orders/accepted?riderId=.
func (s *Server) GetAcceptedOrders(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("riderId"))
	if raw == "" {
		return respondMessage(c, http.StatusBadRequest, msgMissingRiderID)
	}

	riderID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid riderId")
	}

	query, err := queries.NewGetRiderOrdersQuery(riderID)
	if err != nil {
		return s.respondError(c, err, "get accepted orders", "Failed to fetch accepted orders")
	}

	orders, err := s.handlers.RiderOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err, "get accepted orders", "Failed to fetch accepted orders")
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status. The status must be
// one of pending, canceled or completed. An unknown order id still answers 200.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, ok := pathID(c, "id")
	if !ok {
		return respondMessage(c, http.StatusBadRequest, msgInvalidOrderID)
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return s.respondError(c, err, "update order status", msgInternalServerError)
	}

	ctx := c.Request().Context()
	if _, err = s.handlers.UpdateStatus.Handle(ctx, cmd); err != nil {
		return s.respondError(c, err, "update order status", msgInternalServerError)
	}

	s.metrics.StatusUpdated(ctx, cmd.Status().String())
	return respondMessage(c, http.StatusOK, msgOrderStatusUpdated)
}

// AcceptOrder handles PATCH /api/orders/:id/assign. An already accepted order is
// reassigned to the new rider.
func (s *Server) AcceptOrder(c echo.Context) error {
	orderID, ok := pathID(c, "id")
	if !ok {
		return respondMessage(c, http.StatusBadRequest, msgInvalidOrderID)
	}

	var req assignRiderRequest
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, http.StatusBadRequest, msgInvalidRequestBody)
	}

	if req.RiderID == 0 || strings.TrimSpace(req.RiderName) == "" {
		return respondMessage(c, http.StatusBadRequest, msgMissingRiderFields)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, int64(req.RiderID), req.RiderName)
	if err != nil {
		return s.respondError(c, err, "assign rider", msgInternalServerError)
	}

	ctx := c.Request().Context()
	if _, err = s.handlers.AssignRider.Handle(ctx, cmd); err != nil {
		return s.respondError(c, err, "assign rider", msgInternalServerError)
	}

	s.metrics.RiderAssigned(ctx)
	return respondMessage(c, http.StatusOK, msgOrderAcceptedByRider)
}

// CompleteOrder handles PATCH /api/orders/:orderId/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return respondMessage(c, http.StatusBadRequest, msgInvalidOrderID)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.respondError(c, err, "complete order", msgInternalServerError)
	}

	ctx := c.Request().Context()
	if err = s.handlers.CompleteOrder.Handle(ctx, cmd); err != nil {
		return s.respondError(c, err, "complete order", msgInternalServerError)
	}

	s.metrics.OrderCompleted(ctx)
	return respondMessage(c, http.StatusOK, msgOrderCompleted)
}

func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
