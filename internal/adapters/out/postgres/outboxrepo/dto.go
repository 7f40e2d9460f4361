// Package outboxrepo stores domain events next to the aggregates that raised
// them and hands them to the relay.
package outboxrepo

import (
	"encoding/json"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one row of the outbox_messages table. PublishedAt stays NULL
// until the relay has handed the message to the broker.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"type:varchar(100);not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// Event is what an aggregate records and the outbox persists.
type Event interface {
	EventType() string
	AggregateID() kernel.UUID
}

// NewMessageDTO serializes event as the JSON payload of a fresh outbox row.
func NewMessageDTO(event Event, occurredAt time.Time) (MessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		ID:          kernel.NewUUID().Bytes(),
		AggregateID: event.AggregateID().Bytes(),
		EventType:   event.EventType(),
		Payload:     payload,
		OccurredAt:  occurredAt.UTC(),
	}, nil
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
	}, nil
}
