package order

import (
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"
)

// StatusPath is the pointer of the status field inside a Snapshot document.
const StatusPath = "/status"

// Snapshot is the editable shape of an order as a patch sees it.
type Snapshot struct {
	ID         kernel.UUID    `json:"id"`
	CustomerID *kernel.UUID   `json:"customer_id,omitempty"`
	Status     Status         `json:"status"`
	Notes      string         `json:"notes"`
	Items      []ItemSnapshot `json:"items"`
}

type ItemSnapshot struct {
	ProductID kernel.UUID  `json:"product_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	UnitPrice kernel.Money `json:"unit_price"`
}

// PatchSchema lists what a client may change on an order. Identity, prices
// and product references are fixed once the order is placed.
var PatchSchema = patch.NewSchema(
	patch.Allow(StatusPath, patch.OpReplace),
	patch.Allow("/notes", patch.OpReplace),
	patch.Allow("/customer_id", patch.OpAdd, patch.OpReplace, patch.OpRemove).Nullable(),
	patch.Allow("/items/*/quantity", patch.OpReplace),
	patch.Allow("/items/*", patch.OpRemove),
)

// Patcher applies client patches to order snapshots.
type Patcher struct {
	schema patch.Schema
}

func NewPatcher() Patcher {
	return Patcher{schema: PatchSchema}
}

// Apply returns the candidate snapshot. current is never modified.
func (p Patcher) Apply(current Snapshot, changes patch.Patch) (Snapshot, error) {
	return patch.Apply(current, changes, p.schema)
}
