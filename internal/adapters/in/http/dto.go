package http

import (
	"encoding/json"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/queries"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewCustomer struct {
	CPF   string `json:"cpf"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Customer struct {
	ID    kernel.UUID `json:"id"`
	CPF   string      `json:"cpf"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

type CustomerPage struct {
	Items []Customer `json:"items"`
	Page  int        `json:"page"`
	Size  int        `json:"size"`
	Total int64      `json:"total"`
}

// NewProduct accepts the price either as a JSON number or a decimal string.
type NewProduct struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       json.Number `json:"price"`
}

type Product struct {
	ID          kernel.UUID      `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    product.Category `json:"category"`
	Price       kernel.Money     `json:"price"`
}

type NewOrderItem struct {
	ProductID kernel.UUID `json:"product_id"`
	Quantity  int         `json:"quantity"`
}

type NewOrder struct {
	CustomerID *kernel.UUID   `json:"customer_id,omitempty"`
	Items      []NewOrderItem `json:"items"`
	Notes      string         `json:"notes"`
}

type OrderItem struct {
	ProductID kernel.UUID  `json:"product_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	UnitPrice kernel.Money `json:"unit_price"`
	Subtotal  kernel.Money `json:"subtotal"`
}

type Order struct {
	ID         kernel.UUID  `json:"id"`
	CustomerID *kernel.UUID `json:"customer_id,omitempty"`
	Status     order.Status `json:"status"`
	Notes      string       `json:"notes"`
	Items      []OrderItem  `json:"items"`
	Total      kernel.Money `json:"total"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func customerFromDomain(c *customer.Customer) Customer {
	return Customer{ID: c.ID(), CPF: c.CPF().String(), Name: c.Name(), Email: c.Email()}
}

func customerFromView(v queries.CustomerView) Customer {
	return Customer(v)
}

func productFromDomain(p *product.Product) Product {
	return Product{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
	}
}

func productFromView(v queries.ProductView) Product {
	return Product(v)
}

func orderFromDomain(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return Order{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		Notes:      o.Notes(),
		Items:      items,
		Total:      o.Total(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func orderFromView(v queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItem(item))
	}

	return Order{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Status:     v.Status,
		Notes:      v.Notes,
		Items:      items,
		Total:      v.Total,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
