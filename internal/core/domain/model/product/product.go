package product

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

const (
	maxNameLength        = 120
	maxDescriptionLength = 500
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a menu entry. Names are unique across the catalog; uniqueness is
// enforced by storage.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    Category
	price       kernel.Money

	isConstructed bool
}

func NewProduct(id kernel.UUID, name, description string, category Category, price kernel.Money) (*Product, error) {
	product := &Product{isConstructed: true}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setDescription(description),
		product.setCategory(category),
	); err != nil {
		return nil, err
	}
	product.price = price

	return product, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Category() Category {
	return p.category
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ID:          p.id,
		Name:        p.name,
		Description: p.description,
		Category:    p.category,
		Price:       p.price,
	}
}

// Revise returns a new product carrying the fields of candidate.
func (p *Product) Revise(candidate Snapshot) (*Product, error) {
	if !candidate.ID.IsEqual(p.id) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("snapshot of %s cannot revise product %s", candidate.ID, p.id),
		)
	}
	return NewProduct(p.id, candidate.Name, candidate.Description, candidate.Category, candidate.Price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 0, maxDescriptionLength)
	}
	p.description = description
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
