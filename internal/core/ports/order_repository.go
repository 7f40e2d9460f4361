// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories bound to a unit of work, and the publisher
// that relays recorded events.
package ports

import (
	"context"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order, items included.
	// Status changes recorded by the aggregate are written to the outbox in
	// the same transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns *errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingPaymentSince returns orders in AwaitingPayment whose last
	// update happened before the given instant, oldest first.
	GetAllAwaitingPaymentSince(ctx context.Context, before time.Time) ([]*order.Order, error)
}
