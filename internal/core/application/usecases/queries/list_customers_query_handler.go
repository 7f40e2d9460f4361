package queries

import (
	"context"
	"database/sql"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	response := ListCustomersQueryResponse{
		Items: make([]CustomerView, 0, query.Size()),
		Page:  query.Page(),
		Size:  query.Size(),
	}

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT count(*) FROM customers`).Row().Scan(&response.Total); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			cpf,
			name,
			email
		FROM customers
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, query.Size(), query.offset()).Rows()
	if err != nil {
		return ListCustomersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanCustomerView(rows)
		if scanErr != nil {
			return ListCustomersQueryResponse{}, scanErr
		}
		response.Items = append(response.Items, view)
	}

	if err = rows.Err(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

var _ rowScanner = (*sql.Row)(nil)

func scanCustomerView(row rowScanner) (CustomerView, error) {
	var view CustomerView
	var id uuid.UUID

	if err := row.Scan(&id, &view.CPF, &view.Name, &view.Email); err != nil {
		return CustomerView{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerView{}, err
	}
	view.ID = customerID
	return view, nil
}
