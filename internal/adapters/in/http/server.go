// Package http is the inbound HTTP adapter: it maps JSON requests under
// /api/orders onto commands and queries and renders their results.
package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "fooddelivery/internal/adapters/in/http/docs" // registers the OpenAPI document with swag
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
	}

	OrderStatusUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (int64, error)
	}

	RiderAssigner interface {
		Handle(ctx context.Context, cmd commands.AssignRiderCommand) (int64, error)
	}

	OrderCompleter interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}

	CustomerOrdersFinder interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderView, error)
	}

	PendingOrdersFinder interface {
		Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.OrderView, error)
	}

	RiderOrdersFinder interface {
		Handle(ctx context.Context, query queries.GetRiderOrdersQuery) ([]queries.OrderView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder    OrderCreator
	UpdateStatus   OrderStatusUpdater
	AssignRider    RiderAssigner
	CompleteOrder  OrderCompleter
	CustomerOrders CustomerOrdersFinder
	PendingOrders  PendingOrdersFinder
	RiderOrders    RiderOrdersFinder
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewServer creates a server. m may be nil, in which case nothing is recorded
// and /metrics is not exposed.
func NewServer(handlers Handlers, logger *slog.Logger, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
		metrics:  m,
	}
}

// NewEcho returns an echo instance with the server's middleware installed and
// all routes registered.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s.installMiddleware(e)
	s.RegisterRoutes(e)

	return e
}

// RegisterRoutes mounts the order API, the health check, the swagger UI and,
// when metrics are enabled, the Prometheus endpoint.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	orders := e.Group("/api/orders")
	orders.GET("/all", s.GetCustomerOrders)
	orders.GET("/accepted", s.GetAcceptedOrders)
	orders.GET("/pending", s.GetPendingOrders)
	orders.POST("/create", s.CreateOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.PATCH("/:id/assign", s.AcceptOrder)
	orders.PATCH("/:orderId/complete", s.CompleteOrder)
}
