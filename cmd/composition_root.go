package cmd

import (
	"log/slog"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/adapters/in/http"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/adapters/out/kafka"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/adapters/out/postgres"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/queries"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/jobs"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/telemetry"

	"go.opentelemetry.io/otel/metric"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	logger     *slog.Logger

	patchTransitions    order.TransitionValidator
	progressTransitions order.TransitionValidator
}

// NewCompositionRoot wires the long-lived dependencies. The status rule
// chains are wrapped so every checked transition is counted on meter.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher *kafka.Publisher,
	meter metric.Meter,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	patchTransitions, err := telemetry.NewInstrumentedValidator(order.NewPatchTransitionChain(), meter, "patch")
	if err != nil {
		return nil, err
	}
	progressTransitions, err := telemetry.NewInstrumentedValidator(order.NewProgressTransitionChain(), meter, "progress")
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:              config,
		gormDB:              gormDB,
		uowFactory:          postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:           publisher,
		logger:              logger,
		patchTransitions:    patchTransitions,
		progressTransitions: progressTransitions,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), order.NewPatcher(), c.patchTransitions)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.progressTransitions)
}

func (c *CompositionRoot) CreateExpireUnpaidOrdersCommandHandler() commands.ExpireUnpaidOrdersCommandHandler {
	return commands.NewExpireUnpaidOrdersCommandHandler(c.orderUoWFactory(), c.patchTransitions)
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler() commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewPublishOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory(), product.NewPatcher())
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory(), customer.NewPatcher())
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsByCategoryQueryHandler() queries.GetProductsByCategoryQueryHandler {
	return queries.NewGetProductsByCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByCPFQueryHandler() queries.GetCustomerByCPFQueryHandler {
	return queries.NewGetCustomerByCPFQueryHandler(c.gormDB)
}

// CreateHTTPServer binds every use case to the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	advanceOrder := c.CreateAdvanceOrderCommandHandler()
	getOrder := c.CreateGetOrderQueryHandler()
	createProduct := c.CreateCreateProductCommandHandler()
	updateProduct := c.CreateUpdateProductCommandHandler()
	getProducts := c.CreateGetProductsByCategoryQueryHandler()
	registerCustomer := c.CreateRegisterCustomerCommandHandler()
	updateCustomer := c.CreateUpdateCustomerCommandHandler()
	listCustomers := c.CreateListCustomersQueryHandler()
	getCustomerByCPF := c.CreateGetCustomerByCPFQueryHandler()

	return http.NewServer(http.Handlers{
		CreateOrder:           &createOrder,
		UpdateOrder:           &updateOrder,
		AdvanceOrder:          &advanceOrder,
		GetOrder:              getOrder,
		CreateProduct:         &createProduct,
		UpdateProduct:         &updateProduct,
		GetProductsByCategory: getProducts,
		RegisterCustomer:      &registerCustomer,
		UpdateCustomer:        &updateCustomer,
		ListCustomers:         listCustomers,
		GetCustomerByCPF:      getCustomerByCPF,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expire := c.CreateExpireUnpaidOrdersCommandHandler()
	publish := c.CreatePublishOutboxCommandHandler()
	return jobs.NewJobManager(&expire, c.config.UnpaidOrderTTL, &publish, c.config.OutboxBatchSize, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
