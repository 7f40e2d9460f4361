package commands

import (
	"context"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler moves an order to the next status of the forward
// sequence: PAID -> IN_PREPARATION -> READY -> FINISHED. The move goes through
// the progress chain, so unpaid or final orders are rejected with an
// *order.TransitionError.
type AdvanceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	transitions order.TransitionValidator
	now         func() time.Time
}

func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	transitions order.TransitionValidator,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory:  uowFactory,
		transitions: transitions,
		now:         time.Now,
	}
}

func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = current.Advance(h.transitions, h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
