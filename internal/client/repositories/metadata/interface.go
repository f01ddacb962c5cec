// Package metadata implements a generic durable key-value store on the local
// SQLite database: small named records, fully overwritten or fully deleted,
// never patched.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
