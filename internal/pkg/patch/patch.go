// Package patch applies sparse, field-level edits to entity snapshots.
//
// A Patch is an ordered list of JSON Patch (RFC 6902) operations restricted to
// add, remove and replace. Apply runs a patch against a copy of a snapshot and
// returns a new candidate; the snapshot passed in is never modified. Which paths
// an entity exposes, and with which operations, is declared by a Schema owned by
// the entity's package.
//
// The package only guarantees the structural correctness of the result. Whether
// the candidate is acceptable to the business is decided by the caller.
package patch

import (
	"encoding/json"
	"strings"
)

// Op names a patch operation.
type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

func (o Op) isKnown() bool {
	return o == OpAdd || o == OpRemove || o == OpReplace
}

// Operation is a single (op, path, value) record.
type Operation struct {
	Op    Op              `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Replace builds a replace operation. A value that cannot be encoded yields an
// operation without value, which Apply rejects.
func Replace(path string, value any) Operation {
	return Operation{Op: OpReplace, Path: path, Value: encode(value)}
}

// Add builds an add operation.
func Add(path string, value any) Operation {
	return Operation{Op: OpAdd, Path: path, Value: encode(value)}
}

// Remove builds a remove operation.
func Remove(path string) Operation {
	return Operation{Op: OpRemove, Path: path}
}

func encode(value any) json.RawMessage {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return raw
}

// Patch is an immutable, ordered sequence of operations.
type Patch struct {
	ops []Operation
}

// New returns a patch holding a copy of ops.
func New(ops ...Operation) Patch {
	return Patch{ops: append([]Operation(nil), ops...)}
}

// Decode parses a JSON Patch document (a JSON array of operations).
// Operation contents are not checked here; Apply does that against a Schema.
func Decode(data []byte) (Patch, error) {
	var ops []Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return Patch{}, &Error{Index: -1, Cause: err}
	}
	return Patch{ops: ops}, nil
}

// Operations returns a copy of the operations in order.
func (p Patch) Operations() []Operation {
	return append([]Operation(nil), p.ops...)
}

func (p Patch) Len() int {
	return len(p.ops)
}

func (p Patch) IsEmpty() bool {
	return len(p.ops) == 0
}

// Touches reports whether any operation targets path or a location below it.
func (p Patch) Touches(path string) bool {
	for _, op := range p.ops {
		if op.Path == path || strings.HasPrefix(op.Path, path+"/") {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the patch as a JSON Patch document.
func (p Patch) MarshalJSON() ([]byte, error) {
	if p.ops == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.ops)
}
