package commands

import (
	"context"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places new orders in the Received status.
// Product names and prices are copied from the catalog inside the same
// transaction, and the customer, when given, must exist.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the placed order. Unknown products or customers surface as
// *errs.ObjectNotFoundError and nothing is written.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if customerID := cmd.CustomerID(); customerID != nil {
		if _, err := uow.CustomerRepository().Get(ctx, *customerID); err != nil {
			return nil, err
		}
	}

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		product, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(product.ID(), product.Name(), line.Quantity, product.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items, cmd.Notes(), h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
