package ports

import (
	"context"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	// Returns *errs.ObjectAlreadyExistsError when the CPF is already registered.
	Add(ctx context.Context, aggregate *customer.Customer) error

	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get returns *errs.ObjectNotFoundError when no customer has that id.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
