// Package http exposes the ordering use cases over a JSON API built on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/queries"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Use case contracts the server depends on.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	AdvanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error)
	}
	GetProductsByCategoryHandler interface {
		Handle(ctx context.Context, query queries.GetProductsByCategoryQuery) ([]queries.ProductView, error)
	}

	RegisterCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterCustomerCommand) (*customer.Customer, error)
	}
	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error)
	}
	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) (queries.ListCustomersQueryResponse, error)
	}
	GetCustomerByCPFHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerByCPFQuery) (queries.CustomerView, error)
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateOrder  CreateOrderHandler
	UpdateOrder  UpdateOrderHandler
	AdvanceOrder AdvanceOrderHandler
	GetOrder     GetOrderHandler

	CreateProduct         CreateProductHandler
	UpdateProduct         UpdateProductHandler
	GetProductsByCategory GetProductsByCategoryHandler

	RegisterCustomer RegisterCustomerHandler
	UpdateCustomer   UpdateCustomerHandler
	ListCustomers    ListCustomersHandler
	GetCustomerByCPF GetCustomerByCPFHandler
}

// MaxBodySize bounds request bodies; larger ones get 413.
const MaxBodySize = "64K"

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{handlers: handlers, logger: logger.With("component", "http")}
}

// NewEcho builds the echo instance with every route registered. metrics may
// be nil, in which case /metrics is not served.
func NewEcho(s *Server, metrics http.Handler) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	if err := s.RegisterRoutes(e, metrics); err != nil {
		return nil, err
	}
	return e, nil
}

// RegisterRoutes mounts the API. Requests under /api/v1 are checked against
// the embedded OpenAPI document before any handler runs.
func (s *Server) RegisterRoutes(e *echo.Echo, metrics http.Handler) error {
	doc, err := LoadOpenAPI()
	if err != nil {
		return err
	}
	validate, err := s.requestValidator(doc)
	if err != nil {
		return err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api/v1", middleware.BodyLimit(MaxBodySize), validate)

	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers", s.GetCustomers)
	api.PATCH("/customers/:id", s.UpdateCustomer)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.PATCH("/products/:id", s.UpdateProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	return nil
}
