package commands

import (
	"context"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"
)

type CustomerPatchApplicator interface {
	Apply(current customer.Snapshot, changes patch.Patch) (customer.Snapshot, error)
}

// UpdateCustomerCommandHandler applies a partial update to a customer:
// load, patch, validate through the aggregate, persist.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	applicator CustomerPatchApplicator
}

func NewUpdateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	applicator CustomerPatchApplicator,
) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
		applicator: applicator,
	}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	current, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	candidate, err := h.applicator.Apply(current.Snapshot(), cmd.Patch())
	if err != nil {
		return nil, err
	}

	updated, err := current.Revise(candidate)
	if err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
