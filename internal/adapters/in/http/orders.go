package http

import (
	"io"
	"net/http"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/queries"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), body.CustomerID, lines, body.Notes)
	if err != nil {
		return s.fail(c, err)
	}

	placed, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// UpdateOrder handles PATCH /api/v1/orders/:id. The body is a JSON Patch
// document; a status change in it goes through the transition rules.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, changes, err := pathIDAndPatch(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, changes)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(updated))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance, moving a paid order
// one step through preparation.
func (s *Server) AdvanceOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	advanced, err := s.handlers.AdvanceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(advanced))
}

func pathIDAndPatch(c echo.Context) (kernel.UUID, patch.Patch, error) {
	id, err := pathID(c)
	if err != nil {
		return kernel.UUID{}, patch.Patch{}, err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return kernel.UUID{}, patch.Patch{}, err
	}

	changes, err := patch.Decode(body)
	if err != nil {
		return kernel.UUID{}, patch.Patch{}, err
	}

	return id, changes, nil
}
