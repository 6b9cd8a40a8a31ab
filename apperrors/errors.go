// Package apperrors defines the sentinel errors shared across the
// repository, service and controller layers. Controllers dispatch on
// these with errors.Is to pick the HTTP status.
package apperrors

import "errors"

var (
	// ErrValidation marks a malformed payload, rejected before any state is touched.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to a product or order that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock marks an order whose aggregate demand exceeds available
	// stock for at least one line. The whole order is rejected.
	ErrOutOfStock = errors.New("insufficient stock")

	// ErrPersistence marks a failed read/write of the underlying store.
	ErrPersistence = errors.New("persistence failure")
)

// OutOfStockMessage is the canonical client-facing message for a stock rejection.
const OutOfStockMessage = "One or more items are out of stock."
