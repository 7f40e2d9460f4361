package commands

import (
	"context"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"
)

// OrderPatchApplicator turns the current order snapshot into a candidate.
// order.Patcher is the production implementation.
type OrderPatchApplicator interface {
	Apply(current order.Snapshot, changes patch.Patch) (order.Snapshot, error)
}

// UpdateOrderCommandHandler coordinates a partial order update:
// load, apply the patch, validate the status transition, persist.
//
// Nothing is written unless every step succeeds. Errors come back unchanged:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *patch.Error when the patch cannot be applied
//   - *order.TransitionError when a transition rule rejects the new status
//   - domain validation errors from the revised aggregate
//   - storage errors from the repository or the commit
type UpdateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	applicator  OrderPatchApplicator
	transitions order.TransitionValidator
	now         func() time.Time
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	applicator OrderPatchApplicator,
	transitions order.TransitionValidator,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:  uowFactory,
		applicator:  applicator,
		transitions: transitions,
		now:         time.Now,
	}
}

// Handle returns the updated order as persisted.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	candidate, err := h.applicator.Apply(current.Snapshot(), cmd.Patch())
	if err != nil {
		return nil, err
	}

	if cmd.Patch().Touches(order.StatusPath) {
		transition := order.NewTransition(current.ID(), current.Status(), candidate.Status)
		if err = h.transitions.Run(transition); err != nil {
			return nil, err
		}
	}

	updated, err := current.Revise(candidate, h.now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
