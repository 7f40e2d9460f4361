package patch

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// Wildcard matches exactly one pointer segment in a Rule path.
const Wildcard = "*"

// Rule allows a set of operations on the paths matching Path.
type Rule struct {
	segments []string
	ops      []Op
	nullable bool
}

// Allow declares that ops may target path. A segment equal to Wildcard matches
// any single segment, e.g. "/items/*/quantity".
func Allow(path string, ops ...Op) Rule {
	segments, err := parsePointer(path)
	if err != nil {
		panic(fmt.Sprintf("patch: invalid rule path %q: %v", path, err))
	}
	return Rule{segments: segments, ops: ops}
}

// Nullable lets add and replace on r's paths carry a JSON null. Without it a
// null value is refused.
func (r Rule) Nullable() Rule {
	r.nullable = true
	return r
}

func (r Rule) matches(op Op, segments []string) bool {
	if len(segments) != len(r.segments) || !slices.Contains(r.ops, op) {
		return false
	}
	for i, s := range r.segments {
		if s != Wildcard && s != segments[i] {
			return false
		}
	}
	return true
}

// Schema lists the editable paths of one snapshot type.
type Schema struct {
	rules []Rule
}

func NewSchema(rules ...Rule) Schema {
	return Schema{rules: rules}
}

// Check validates every operation of p without applying any of them.
func (s Schema) Check(p Patch) error {
	for i, op := range p.ops {
		if err := s.check(op); err != nil {
			return &Error{Index: i, Op: op.Op, Path: op.Path, Cause: err}
		}
	}
	return nil
}

func (s Schema) check(op Operation) error {
	if !op.Op.isKnown() {
		return fmt.Errorf("%w: %q", ErrOperationIsUnknown, op.Op)
	}

	segments, err := parsePointer(op.Path)
	if err != nil {
		return err
	}

	var matched *Rule
	for i := range s.rules {
		if s.rules[i].matches(op.Op, segments) {
			matched = &s.rules[i]
			break
		}
	}
	if matched == nil {
		return ErrPathIsNotAllowed
	}

	if op.Op == OpRemove {
		return nil
	}
	if len(op.Value) == 0 {
		return ErrValueIsMissing
	}
	if !matched.nullable && bytes.Equal(bytes.TrimSpace(op.Value), []byte("null")) {
		return ErrValueIsNull
	}
	return nil
}

// parsePointer splits a JSON pointer into unescaped segments.
// The root pointer "" is rejected: patches never replace a whole document.
func parsePointer(path string) ([]string, error) {
	if path == "" || path == "/" || !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrPathIsMalformed, path)
	}

	segments := strings.Split(path[1:], "/")
	for i, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrPathIsMalformed, path)
		}
		if strings.Contains(strings.ReplaceAll(strings.ReplaceAll(s, "~0", ""), "~1", ""), "~") {
			return nil, fmt.Errorf("%w: %q has a bad escape", ErrPathIsMalformed, path)
		}
		segments[i] = strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
	}
	return segments, nil
}
