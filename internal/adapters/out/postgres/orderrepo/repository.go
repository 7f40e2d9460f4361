package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/adapters/out/postgres/outboxrepo"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	outbox  *outboxrepo.GormOutboxRepository
	tracker aggregateTracker
}

// aggregateTracker is told about every aggregate whose events reached the
// outbox, so the unit of work can clear them once the transaction commits.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		outbox:  outboxrepo.NewGormOutboxRepository(db),
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderID", aggregate.ID().String(), err)
		}
		return err
	}

	if err := r.writeEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the order row, replaces its items and appends the recorded
// status changes to the outbox.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("customer_id", "status", "notes", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.Items).Error; err != nil {
		return err
	}

	if err := r.writeEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads the order and locks its row until the surrounding transaction
// ends, so concurrent status changes on the same order are serialized.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAwaitingPaymentSince locks the stale unpaid orders it returns. Orders
// locked by another transaction are skipped and picked up by a later call.
func (r *GormOrderRepository) GetAllAwaitingPaymentSince(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND updated_at < ?", int(order.AwaitingPayment), before.UTC()).
		Order("updated_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) writeEvents(ctx context.Context, aggregate *order.Order) error {
	events := aggregate.DomainEvents()
	if len(events) == 0 {
		return nil
	}

	messages := make([]outboxrepo.MessageDTO, 0, len(events))
	for _, event := range events {
		message, err := outboxrepo.NewMessageDTO(event, event.OccurredAt)
		if err != nil {
			return err
		}
		messages = append(messages, message)
	}

	return r.outbox.Add(ctx, messages...)
}
