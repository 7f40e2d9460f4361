package patch

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Apply produces a candidate from target by applying p.
//
// Every operation is checked against schema before anything is applied. The
// operations then run against a JSON encoding of target and the result is
// decoded strictly into a fresh T, so unknown fields and type mismatches are
// rejected. On any failure target is returned as given together with an *Error.
//
// An empty patch returns target unchanged.
func Apply[T any](target T, p Patch, schema Schema) (T, error) {
	if p.IsEmpty() {
		return target, nil
	}

	if err := schema.Check(p); err != nil {
		return target, err
	}

	doc, err := json.Marshal(target)
	if err != nil {
		return target, &Error{Index: -1, Cause: err}
	}

	ops, err := p.MarshalJSON()
	if err != nil {
		return target, &Error{Index: -1, Cause: err}
	}

	decoded, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return target, &Error{Index: -1, Cause: err}
	}

	patched, err := decoded.Apply(doc)
	if err != nil {
		return target, &Error{Index: -1, Cause: fmt.Errorf("%w: %w", ErrDocumentIsIncompatible, err)}
	}

	var candidate T
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&candidate); err != nil {
		return target, &Error{Index: -1, Cause: fmt.Errorf("%w: %w", ErrDocumentIsIncompatible, err)}
	}

	return candidate, nil
}
