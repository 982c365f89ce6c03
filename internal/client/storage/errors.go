package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrItemNotFound indicates that cart or wishlist item was not found
	ErrItemNotFound = errors.New("item not found")

	// ErrOperationNotFound indicates that pending operation was not found
	ErrOperationNotFound = errors.New("pending operation not found")
)
