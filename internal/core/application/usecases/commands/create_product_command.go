package commands

import (
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	category    product.Category
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand parses the category name and the price literal.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, description, category, price string,
) (CreateProductCommand, error) {
	parsedCategory, categoryErr := product.CategoryFromString(category)
	parsedPrice, priceErr := kernel.MoneyFromString(price)
	if err := errors.Join(productID.Validate(), categoryErr, priceErr); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		category:    parsedCategory,
		price:       parsedPrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) Category() product.Category {
	return c.category
}

func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}
