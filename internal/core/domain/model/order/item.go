package order

import (
	"errors"
	"strings"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 99
)

// Item is one product line of an order. Name and unit price are copied from
// the catalog when the order is placed, so later catalog edits do not change
// what the customer was charged.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money
}

func NewItem(productID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		productID: productID,
		name:      strings.TrimSpace(name),
		quantity:  quantity,
		unitPrice: unitPrice,
	}
	if err := item.validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) validate() error {
	var nameErr, quantityErr error
	if i.name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if i.quantity < MinItemQuantity || i.quantity > MaxItemQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", i.quantity, MinItemQuantity, MaxItemQuantity)
	}
	return errors.Join(i.productID.Validate(), nameErr, quantityErr)
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is quantity times unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
