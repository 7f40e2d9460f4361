package commands

import (
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	patch      patch.Patch

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID kernel.UUID, changes patch.Patch) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		patch:      changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c UpdateCustomerCommand) Patch() patch.Patch {
	return c.patch
}
