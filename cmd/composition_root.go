package cmd

import (
	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/statusrepo"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/jobs"
	"sales/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     zerolog.Logger

	registry      *prometheus.Registry
	orderMetrics  *metrics.OrderMetrics
	serverMetrics *metrics.ServerMetrics
	jobMetrics    *metrics.JobMetrics
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger zerolog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()

	return CompositionRoot{
		configs:       configs,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:        logger,
		registry:      registry,
		orderMetrics:  metrics.NewOrderMetrics(registry),
		serverMetrics: metrics.NewServerMetrics(registry),
		jobMetrics:    metrics.NewJobMetrics(registry),
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

func (c *CompositionRoot) CreateInvoiceOrderCommandHandler() commands.InvoiceOrderCommandHandler {
	return commands.NewInvoiceOrderCommandHandler(c.orderUoWFactory(), c.orderMetrics)
}

func (c *CompositionRoot) CreatePayInvoiceCommandHandler() commands.PayInvoiceCommandHandler {
	return commands.NewPayInvoiceCommandHandler(c.orderUoWFactory(), c.orderMetrics)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.orderMetrics)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.orderUoWFactory(), c.orderMetrics)
}

func (c *CompositionRoot) CreateOrderActionCommandHandler() commands.OrderActionCommandHandler {
	return commands.NewOrderActionCommandHandler(c.orderUoWFactory(), c.orderMetrics)
}

func (c *CompositionRoot) CreateClassifyOrderCommandHandler() commands.ClassifyOrderCommandHandler {
	return commands.NewClassifyOrderCommandHandler(c.orderUoWFactory(), c.orderMetrics)
}

func (c *CompositionRoot) CreateReclassifyOrdersCommandHandler() *commands.ReclassifyOrdersCommandHandler {
	handler := commands.NewReclassifyOrdersCommandHandler(c.orderUoWFactory(), c.orderMetrics)
	return &handler
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateStatusLabelRepository() *statusrepo.GormStatusLabelRepository {
	return statusrepo.NewGormStatusLabelRepository(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReclassifyOrdersCommandHandler(),
		c.configs.ReclassifySchedule,
		c.jobMetrics,
		c.logger,
	)
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) ServerMetrics() *metrics.ServerMetrics {
	return c.serverMetrics
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
