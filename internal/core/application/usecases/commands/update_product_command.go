package commands

import (
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	patch     patch.Patch

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID kernel.UUID, changes patch.Patch) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: productID,
		patch:     changes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) Patch() patch.Patch {
	return c.patch
}
