package commands_test

import (
	"testing"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/customer"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "X-Burger", 2, mustMoney(t, "18.90"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), nil, []order.Item{item}, status, "", placedAt, placedAt)
	require.NoError(t, err)
	return o
}

func newStoredProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "", product.Snack, mustMoney(t, price))
	require.NoError(t, err)
	return p
}

func newStoredCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	cpf, err := customer.NewCPF("12345678901")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), cpf, "Maria", "maria@example.com")
	require.NoError(t, err)
	return c
}
