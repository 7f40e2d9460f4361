package queries

import (
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
)

var (
	ErrGetCustomerByCPFQueryIsNotConstructed = errors.New(
		"GetCustomerByCPFQuery must be created via NewGetCustomerByCPFQuery constructor",
	)
)

// GetCustomerByCPFQuery identifies a customer at the kiosk by CPF.
type GetCustomerByCPFQuery struct {
	cpf customer.CPF

	guard guard.ConstructorGuard
}

func NewGetCustomerByCPFQuery(cpf string) (GetCustomerByCPFQuery, error) {
	parsed, err := customer.NewCPF(cpf)
	if err != nil {
		return GetCustomerByCPFQuery{}, err
	}
	return GetCustomerByCPFQuery{cpf: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerByCPFQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByCPFQueryIsNotConstructed)
}

func (q GetCustomerByCPFQuery) CPF() customer.CPF {
	return q.cpf
}
