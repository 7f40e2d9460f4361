package queries

import (
	"context"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetProductsByCategoryQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsByCategoryQueryHandler(db *gorm.DB) GetProductsByCategoryQueryHandler {
	return GetProductsByCategoryQueryHandler{db: db}
}

// Handle returns the products of the category sorted by name. An empty
// category yields an empty slice.
func (h GetProductsByCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetProductsByCategoryQuery,
) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			category,
			price
		FROM products
		WHERE category = ?
		ORDER BY name
	`, int(query.Category())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view ProductView
		var id uuid.UUID
		var category int
		var price decimal.Decimal

		if err = rows.Scan(&id, &view.Name, &view.Description, &category, &price); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.Category = product.Category(category)
		if view.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
