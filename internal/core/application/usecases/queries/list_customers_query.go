package queries

import (
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/guard"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

// ListCustomersQuery pages through registered customers ordered by name.
// Pages start at 1.
type ListCustomersQuery struct {
	page int
	size int

	guard guard.ConstructorGuard
}

func NewListCustomersQuery(page, size int) (ListCustomersQuery, error) {
	var pageErr, sizeErr error
	if page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}
	if err := errors.Join(pageErr, sizeErr); err != nil {
		return ListCustomersQuery{}, err
	}

	return ListCustomersQuery{page: page, size: size, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Page() int {
	return q.page
}

func (q ListCustomersQuery) Size() int {
	return q.size
}

func (q ListCustomersQuery) offset() int {
	return (q.page - 1) * q.size
}

type CustomerView struct {
	ID    kernel.UUID
	CPF   string
	Name  string
	Email string
}

type ListCustomersQueryResponse struct {
	Items []CustomerView
	Page  int
	Size  int
	Total int64
}
