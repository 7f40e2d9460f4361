package commands

import (
	"context"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
)

// ExpireUnpaidOrdersCommandHandler cancels stale AwaitingPayment orders in a
// single transaction. Each cancellation goes through the transition chain like
// any client edit, so a rule rejection aborts the whole batch.
type ExpireUnpaidOrdersCommandHandler struct {
	uowFactory  OrderUoWFactory
	transitions order.TransitionValidator
	now         func() time.Time
}

func NewExpireUnpaidOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	transitions order.TransitionValidator,
) ExpireUnpaidOrdersCommandHandler {
	return ExpireUnpaidOrdersCommandHandler{
		uowFactory:  uowFactory,
		transitions: transitions,
		now:         time.Now,
	}
}

// Handle returns how many orders were cancelled.
func (h *ExpireUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireUnpaidOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now()
	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllAwaitingPaymentSince(ctx, now.Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	if len(orders) == 0 {
		return 0, nil
	}

	for _, o := range orders {
		if err = o.ChangeStatus(order.Cancelled, h.transitions, now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
