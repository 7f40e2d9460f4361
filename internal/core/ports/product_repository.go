package ports

import (
	"context"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	// Returns *errs.ObjectAlreadyExistsError when the name is taken.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	// Returns *errs.ObjectAlreadyExistsError when the new name is taken.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get returns *errs.ObjectNotFoundError when no product has that id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
