package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomerByCPFQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerByCPFQueryHandler(db *gorm.DB) GetCustomerByCPFQueryHandler {
	return GetCustomerByCPFQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the CPF is not registered.
func (h GetCustomerByCPFQueryHandler) Handle(ctx context.Context, query GetCustomerByCPFQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cpf,
			name,
			email
		FROM customers
		WHERE cpf = ?
	`, query.CPF().String()).Row()

	view, err := scanCustomerView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerView{}, errs.NewObjectNotFoundError("cpf", query.CPF().String())
	}
	if err != nil {
		return CustomerView{}, err
	}
	return view, nil
}
