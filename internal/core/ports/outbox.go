package ports

import (
	"context"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
)

// OutboxMessage is an event stored alongside the aggregate that produced it,
// waiting to be relayed to the broker.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
type OutboxRepository interface {
	// GetPending returns at most limit unpublished messages, oldest first.
	// Rows are locked for the rest of the transaction so concurrent relays
	// skip them.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the given messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the broker. Publishing is
// at-least-once: a message may be sent again if marking it fails.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
