package cmd

import (
	"log/slog"
	"time"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/gormstore"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *gormstore.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot wires handlers over an open database handle. m may be nil.
func NewCompositionRoot(config Config, gormDB *gorm.DB, m *metrics.Metrics, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: gormstore.NewGormUnitOfWorkFactory(gormDB),
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory(), time.Now)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderOrdersQueryHandler() queries.GetRiderOrdersQueryHandler {
	return queries.NewGetRiderOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateStatus:   c.CreateUpdateOrderStatusCommandHandler(),
		AssignRider:    c.CreateAssignRiderCommandHandler(),
		CompleteOrder:  c.CreateCompleteOrderCommandHandler(),
		CustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
		PendingOrders:  c.CreateGetPendingOrdersQueryHandler(),
		RiderOrders:    c.CreateGetRiderOrdersQueryHandler(),
	}, c.logger, c.metrics)
}

// CreateJobManager returns the background jobs enabled by the configuration.
// The pending order expiry job runs only with a positive PendingOrderTTL.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var list []jobs.Job

	if c.config.PendingOrderTTL > 0 {
		job, err := jobs.NewPendingOrderExpiryJob(
			c.CreateCancelStaleOrdersCommandHandler(),
			c.metrics,
			c.config.PendingOrderTTL,
			c.config.PendingOrderSweepSchedule,
			c.logger,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, job)
	}

	return jobs.NewJobManager(list...), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
