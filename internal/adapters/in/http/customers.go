package http

import (
	"net/http"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/queries"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var body NewCustomer
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), body.CPF, body.Name, body.Email)
	if err != nil {
		return s.fail(c, err)
	}

	registered, err := s.handlers.RegisterCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, customerFromDomain(registered))
}

// GetCustomers handles GET /api/v1/customers. With ?cpf= it identifies a
// single customer; otherwise it pages through all of them.
func (s *Server) GetCustomers(c echo.Context) error {
	if cpf := c.QueryParam("cpf"); cpf != "" {
		return s.getCustomerByCPF(c, cpf)
	}

	page, err := intParam(c, "page", 1)
	if err != nil {
		return badRequest(c, "page must be an integer")
	}
	size, err := intParam(c, "size", queries.DefaultPageSize)
	if err != nil {
		return badRequest(c, "size must be an integer")
	}

	query, err := queries.NewListCustomersQuery(page, size)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.ListCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := CustomerPage{
		Items: make([]Customer, 0, len(result.Items)),
		Page:  result.Page,
		Size:  result.Size,
		Total: result.Total,
	}
	for _, view := range result.Items {
		response.Items = append(response.Items, customerFromView(view))
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) getCustomerByCPF(c echo.Context, cpf string) error {
	query, err := queries.NewGetCustomerByCPFQuery(cpf)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetCustomerByCPF.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, customerFromView(view))
}

// UpdateCustomer handles PATCH /api/v1/customers/:id with a JSON Patch body.
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, changes, err := pathIDAndPatch(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, changes)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.UpdateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, customerFromDomain(updated))
}
