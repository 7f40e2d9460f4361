// Package customerrepo maps customers onto the customers table.
package customerrepo

import (
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CPF       string    `gorm:"column:cpf;type:char(11);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(120);not null;index"`
	Email     string    `gorm:"type:varchar(254);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    aggregate.ID().Bytes(),
		CPF:   aggregate.CPF().String(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cpf, err := customer.NewCPF(dto.CPF)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, cpf, dto.Name, dto.Email)
}
