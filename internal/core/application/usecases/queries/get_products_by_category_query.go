package queries

import (
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
)

var (
	ErrGetProductsByCategoryQueryIsNotConstructed = errors.New(
		"GetProductsByCategoryQuery must be created via NewGetProductsByCategoryQuery constructor",
	)
)

// GetProductsByCategoryQuery lists the menu section of one category.
// An unknown category name is rejected with *errs.ValueIsInvalidError.
type GetProductsByCategoryQuery struct {
	category product.Category

	guard guard.ConstructorGuard
}

func NewGetProductsByCategoryQuery(category string) (GetProductsByCategoryQuery, error) {
	parsed, err := product.CategoryFromString(category)
	if err != nil {
		return GetProductsByCategoryQuery{}, err
	}
	return GetProductsByCategoryQuery{category: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductsByCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsByCategoryQueryIsNotConstructed)
}

func (q GetProductsByCategoryQuery) Category() product.Category {
	return q.category
}

type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    product.Category
	Price       kernel.Money
}
