// Package kafka relays outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/ports"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const (
	EventTypeHeader = "event_type"
	MessageIDHeader = "message_id"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher. Messages are keyed by aggregate
// id so every change of one order lands on the same partition, in order.
type Publisher struct {
	writer MessageWriter
	topic  string
	logger *slog.Logger
}

// NewWriter builds a synchronous writer for topic. brokers is a comma
// separated host list.
func NewWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
}

func NewPublisher(writer MessageWriter, topic string, logger *slog.Logger) (*Publisher, error) {
	if writer == nil {
		return nil, errs.NewValueIsRequiredError("writer")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		writer: writer,
		topic:  topic,
		logger: logger.With("component", "kafka_publisher", "topic", topic),
	}, nil
}

// Publish writes all messages in one batch. kafka-go fails the whole call if
// any message is rejected, so the caller leaves every message pending.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, message := range messages {
		batch = append(batch, toKafkaMessage(message))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		p.logger.ErrorContext(ctx, "publish failed", "count", len(batch), "err", err)
		return err
	}

	p.logger.DebugContext(ctx, "published", "count", len(batch))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(message ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(message.AggregateID.String()),
		Value: message.Payload,
		Time:  message.OccurredAt,
		Headers: []kafka.Header{
			{Key: EventTypeHeader, Value: []byte(message.EventType)},
			{Key: MessageIDHeader, Value: []byte(message.ID.String())},
		},
	}
}
