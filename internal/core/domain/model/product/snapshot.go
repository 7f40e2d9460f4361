package product

import (
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/kernel"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/patch"
)

type Snapshot struct {
	ID          kernel.UUID  `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Price       kernel.Money `json:"price"`
}

var PatchSchema = patch.NewSchema(
	patch.Allow("/name", patch.OpReplace),
	patch.Allow("/description", patch.OpReplace),
	patch.Allow("/category", patch.OpReplace),
	patch.Allow("/price", patch.OpReplace),
)

type Patcher struct {
	schema patch.Schema
}

func NewPatcher() Patcher {
	return Patcher{schema: PatchSchema}
}

func (p Patcher) Apply(current Snapshot, changes patch.Patch) (Snapshot, error) {
	return patch.Apply(current, changes, p.schema)
}
