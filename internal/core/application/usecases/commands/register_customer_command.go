package commands

import (
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand carries the fields of a new customer. Name and
// e-mail are validated by the aggregate.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	cpf        customer.CPF
	name       string
	email      string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(customerID kernel.UUID, cpf, name, email string) (RegisterCustomerCommand, error) {
	parsedCPF, cpfErr := customer.NewCPF(cpf)
	if err := errors.Join(customerID.Validate(), cpfErr); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return RegisterCustomerCommand{
		customerID: customerID,
		cpf:        parsedCPF,
		name:       name,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RegisterCustomerCommand) CPF() customer.CPF {
	return c.cpf
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Email() string {
	return c.email
}
