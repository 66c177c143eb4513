package cmd

import (
	"log/slog"
	"time"

	httpadapter "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/voucherrepo"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/jobs"
	"sales/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		metrics:    metrics.New(registry),
		logger:     logger,
	}
}

// Metrics returns the application collectors.
func (c *CompositionRoot) Metrics() *metrics.Metrics { return c.metrics }

// MetricsGatherer returns the registry holding the application and runtime collectors.
func (c *CompositionRoot) MetricsGatherer() prometheus.Gatherer { return c.registry }

// Migrate creates or updates the tables used by the postgres adapter.
func (c *CompositionRoot) Migrate() error {
	return c.gormDB.AutoMigrate(&voucherrepo.VoucherDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDraftOrderCommandHandler() *commands.CreateDraftOrderCommandHandler {
	h := commands.NewCreateDraftOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() *commands.AddOrderItemCommandHandler {
	h := commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() *commands.RemoveOrderItemCommandHandler {
	h := commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderItemUnitsCommandHandler() *commands.ChangeOrderItemUnitsCommandHandler {
	h := commands.NewChangeOrderItemUnitsCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateApplyVoucherCommandHandler() *commands.ApplyVoucherCommandHandler {
	h := commands.NewApplyVoucherCommandHandler(c.uoWFactory(), time.Now)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCancelStaleDraftsCommandHandler() *commands.CancelStaleDraftsCommandHandler {
	h := commands.NewCancelStaleDraftsCommandHandler(c.orderUoWFactory(), time.Now, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDraftOrder:     c.CreateCreateDraftOrderCommandHandler(),
		AddOrderItem:         c.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:      c.CreateRemoveOrderItemCommandHandler(),
		ChangeOrderItemUnits: c.CreateChangeOrderItemUnitsCommandHandler(),
		ApplyVoucher:         c.CreateApplyVoucherCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListCustomerOrders:   c.CreateListCustomerOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStaleDraftsCommandHandler(),
		c.config.StaleDraftSchedule,
		c.config.DraftOrderTTL,
		c.metrics,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
