// Package errs provides the structured error types shared by the ordering service.
// Every type follows the same shape so that callers can branch with errors.Is and
// errors.As regardless of which layer produced the error.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ObjectAlreadyExistsError: a uniqueness constraint rejected a write
//   - VersionIsInvalidError: a version marker is malformed or stale
//
// Each error type has a sentinel (ErrObjectNotFound, ...), a struct with the
// error details, constructors with and without a cause, and an Unwrap method
// returning the sentinel.
package errs
