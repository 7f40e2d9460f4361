package order

import (
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
)

// StatusChangedEventType is the event_type header of published status changes.
const StatusChangedEventType = "order.status_changed"

// StatusChanged is recorded by the aggregate whenever its status moves and is
// written to the outbox in the same transaction as the order.
type StatusChanged struct {
	OrderID    kernel.UUID `json:"order_id"`
	From       Status      `json:"from"`
	To         Status      `json:"to"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func (e StatusChanged) EventType() string {
	return StatusChangedEventType
}

func (e StatusChanged) AggregateID() kernel.UUID {
	return e.OrderID
}
