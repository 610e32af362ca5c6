package kv

import "context"

// Repository is the raw key-value persistence surface backing the store's
// logical collections. Values are opaque byte payloads (JSON documents).
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set durably overwrites the value for key, inserting it if absent.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
