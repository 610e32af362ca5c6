// Package common defines shared sentinel errors used across the BorrowSafe
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/lookup errors.
	ErrNotFound = errors.New("not found")

	// Validation errors.
	ErrEmptyItemName = errors.New("item name is empty")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
