// Package kernel provides the value objects shared by every aggregate of the
// ordering service.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Money: non-negative monetary amount backed by github.com/shopspring/decimal
//
// Both are immutable and safe for concurrent use.
package kernel
