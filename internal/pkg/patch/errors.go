package patch

import (
	"errors"
	"fmt"
)

var (
	// ErrPatchIsInvalid is matched by every error this package returns.
	ErrPatchIsInvalid = errors.New("patch is invalid")

	ErrOperationIsUnknown     = errors.New("operation is unknown")
	ErrPathIsMalformed        = errors.New("path is malformed")
	ErrPathIsNotAllowed       = errors.New("path is not allowed")
	ErrValueIsMissing         = errors.New("value is missing")
	ErrValueIsNull            = errors.New("value must not be null")
	ErrDocumentIsIncompatible = errors.New("document is incompatible with patch")
)

// Error describes why a patch was refused. Index is the position of the
// offending operation, or -1 when the patch as a whole failed.
type Error struct {
	Index int
	Op    Op
	Path  string
	Cause error
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", ErrPatchIsInvalid, e.Cause)
	}
	return fmt.Sprintf("%s: operation %d (%s %s): %v", ErrPatchIsInvalid, e.Index, e.Op, e.Path, e.Cause)
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPatchIsInvalid}
	}
	return []error{ErrPatchIsInvalid, e.Cause}
}
