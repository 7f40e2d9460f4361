package http

import (
	"net/http"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/queries"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var body NewProduct
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(),
		body.Name,
		body.Description,
		body.Category,
		body.Price.String(),
	)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, productFromDomain(created))
}

// GetProducts handles GET /api/v1/products?category=.
func (s *Server) GetProducts(c echo.Context) error {
	query, err := queries.NewGetProductsByCategoryQuery(c.QueryParam("category"))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.GetProductsByCategory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Product, 0, len(views))
	for _, view := range views {
		response = append(response, productFromView(view))
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateProduct handles PATCH /api/v1/products/:id with a JSON Patch body.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, changes, err := pathIDAndPatch(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateProductCommand(id, changes)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.UpdateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, productFromDomain(updated))
}
