package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its items with two statements.
// The total is computed from the item rows.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var header struct {
		ID         uuid.UUID
		CustomerID uuid.NullUUID
		Status     int
		Notes      string
		CreatedAt  time.Time
		UpdatedAt  time.Time
	}
	err := db.Raw(`
		SELECT
			id,
			customer_id,
			status,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(
		&header.ID,
		&header.CustomerID,
		&header.Status,
		&header.Notes,
		&header.CreatedAt,
		&header.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:        query.OrderID(),
		Status:    order.Status(header.Status),
		Notes:     header.Notes,
		Total:     kernel.ZeroMoney(),
		CreatedAt: header.CreatedAt,
		UpdatedAt: header.UpdatedAt,
	}
	if header.CustomerID.Valid {
		customerID, idErr := kernel.UUIDFromBytes(header.CustomerID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.CustomerID = &customerID
	}

	rows, err := db.Raw(`
		SELECT
			product_id,
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID uuid.UUID
		var item OrderItemView
		var unitPrice decimal.Decimal

		if err = rows.Scan(&productID, &item.Name, &item.Quantity, &unitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}
		item.Subtotal = item.UnitPrice.Times(item.Quantity)
		response.Total = response.Total.Add(item.Subtotal)
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
