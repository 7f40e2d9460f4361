package commands

import (
	"context"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"
)

type ProductPatchApplicator interface {
	Apply(current product.Snapshot, changes patch.Patch) (product.Snapshot, error)
}

// UpdateProductCommandHandler applies a partial update to a catalog product.
// Orders already placed keep the name and price they were placed with.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	applicator ProductPatchApplicator
}

func NewUpdateProductCommandHandler(
	uowFactory ProductUoWFactory,
	applicator ProductPatchApplicator,
) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		applicator: applicator,
	}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	current, err := productRepo.Get(ctx, cmd.ProductID())
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

	if err = productRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
