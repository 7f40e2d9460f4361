package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

const maxNotesLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering flow. It owns its items and its
// single current status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must hold at least one item
//   - Status is always a member of the closed set
//   - Status only changes through a TransitionValidator, or through Revise
//     after the caller ran one
type Order struct {
	id         kernel.UUID
	customerID *kernel.UUID
	items      []Item
	status     Status
	notes      string
	createdAt  time.Time
	updatedAt  time.Time

	events []StatusChanged

	isConstructed bool
}

// NewOrder places an order in the Received status.
//
// Example:
//
//	item, _ := order.NewItem(productID, "X-Burger", 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), nil, []order.Item{item}, "no onions", time.Now())
func NewOrder(id kernel.UUID, customerID *kernel.UUID, items []Item, notes string, now time.Time) (*Order, error) {
	order := &Order{
		status:        Received,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order read from storage. No event is recorded.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	items []Item,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setStatus(status),
		order.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return order, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns nil for anonymous orders.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Total is the sum of item subtotals.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Snapshot exports the editable fields of the order.
func (o *Order) Snapshot() Snapshot {
	snapshot := Snapshot{
		ID:     o.id,
		Status: o.status,
		Notes:  o.notes,
		Items:  make([]ItemSnapshot, 0, len(o.items)),
	}
	if o.customerID != nil {
		customerID := *o.customerID
		snapshot.CustomerID = &customerID
	}
	for _, item := range o.items {
		snapshot.Items = append(snapshot.Items, ItemSnapshot{
			ProductID: item.productID,
			Name:      item.name,
			Quantity:  item.quantity,
			UnitPrice: item.unitPrice,
		})
	}
	return snapshot
}

// Revise returns a new order carrying the fields of candidate. The receiver is
// left untouched. Status legality is not checked here: callers run the
// transition chain on the pair (o.Status(), candidate.Status) beforehand.
func (o *Order) Revise(candidate Snapshot, now time.Time) (*Order, error) {
	if !candidate.ID.IsEqual(o.id) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("snapshot of %s cannot revise order %s", candidate.ID, o.id),
		)
	}

	items := make([]Item, 0, len(candidate.Items))
	var itemErrs []error
	for _, s := range candidate.Items {
		item, err := NewItem(s.ProductID, s.Name, s.Quantity, s.UnitPrice)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	revised := &Order{
		id:            o.id,
		createdAt:     o.createdAt,
		updatedAt:     now.UTC(),
		events:        append([]StatusChanged(nil), o.events...),
		isConstructed: true,
	}
	if err := errors.Join(
		revised.setCustomerID(candidate.CustomerID),
		revised.setItems(items),
		revised.setStatus(candidate.Status),
		revised.setNotes(candidate.Notes),
	); err != nil {
		return nil, err
	}

	if revised.status != o.status {
		revised.recordStatusChange(o.status, now)
	}
	return revised, nil
}

// ChangeStatus moves the order to proposed once validator accepts the transition.
// A rejected transition leaves the order unchanged.
func (o *Order) ChangeStatus(proposed Status, validator TransitionValidator, now time.Time) error {
	if err := validator.Run(NewTransition(o.id, o.status, proposed)); err != nil {
		return err
	}
	if proposed == o.status {
		return nil
	}

	from := o.status
	o.status = proposed
	o.updatedAt = now.UTC()
	o.recordStatusChange(from, now)
	return nil
}

// Advance moves the order to the next status of the forward sequence through
// validator. Orders with no successor are rejected with ErrStatusIsFinal.
func (o *Order) Advance(validator TransitionValidator, now time.Time) error {
	next, ok := o.status.Next()
	if !ok {
		return NewTransition(o.id, o.status, o.status).reject(ErrStatusIsFinal)
	}
	return o.ChangeStatus(next, validator, now)
}

// DomainEvents returns the status changes recorded since the order was loaded.
func (o *Order) DomainEvents() []StatusChanged {
	events := make([]StatusChanged, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) recordStatusChange(from Status, now time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		From:       from,
		To:         o.status,
		OccurredAt: now.UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		o.customerID = nil
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	id := *customerID
	o.customerID = &id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, maxNotesLength)
	}
	o.notes = notes
	return nil
}
