package http

import (
	"errors"
	"net/http"
	"strings"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgMissingOrderFields  = "Missing required fields (user, location, cartItems, or restaurant)"
	msgMissingCustomerID   = "Missing customerId in query."
	msgMissingRiderID      = "Missing riderId"
	msgMissingRiderFields  = "Missing riderId or riderName"
	msgInvalidOrderID      = "Invalid order id"
	msgInvalidRequestBody  = "Invalid request body"
	msgOrderNotFound       = "Order not found"
	msgInternalServerError = "Internal server error"

	msgOrderCreated         = "Order created"
	msgOrderStatusUpdated   = "Order status updated"
	msgOrderAcceptedByRider = "Order accepted by rider"
	msgOrderCompleted       = "Order marked as completed"
)

type messageResponse struct {
	Message string `json:"message"`
}

type orderCreatedResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, messageResponse{Message: message})
}

// respondError maps use case errors onto status codes: validation failures are
// 400 with the violation text, missing objects are 404 and everything else is a
// logged 500 whose body carries only fallback.
func (s *Server) respondError(c echo.Context, err error, operation, fallback string) error {
	switch {
	case errs.IsValidation(err):
		return respondMessage(c, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondMessage(c, http.StatusNotFound, msgOrderNotFound)
	default:
		s.logger.ErrorContext(c.Request().Context(), operation+" failed",
			"error", err,
			"request_id", requestID(c),
		)
		return respondMessage(c, http.StatusInternalServerError, fallback)
	}
}

// validationMessage flattens joined errors onto one line.
func validationMessage(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
