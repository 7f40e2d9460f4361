// Package orderrepo maps the order aggregate onto the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Items are replaced wholesale on every update.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID *uuid.UUID     `gorm:"type:uuid;index"`
	Status     int            `gorm:"type:smallint;not null;index:idx_orders_status_updated_at,priority:1"`
	Notes      string         `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt  time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  time.Time      `gorm:"not null;autoUpdateTime:false;index:idx_orders_status_updated_at,priority:2"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO keeps the item position so reads return lines in the order
// they were placed.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(120);not null"`
	Quantity  int             `gorm:"type:smallint;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var customerID *uuid.UUID
	if aggregate.CustomerID() != nil {
		raw := aggregate.CustomerID().Bytes()
		customerID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: customerID,
		Status:     int(aggregate.Status()),
		Notes:      aggregate.Notes(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Items:      items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, idErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if idErr != nil {
			return nil, idErr
		}
		customerID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		order.Status(dto.Status),
		dto.Notes,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Name, dto.Quantity, unitPrice)
}
