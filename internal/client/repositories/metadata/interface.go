// Package metadata is the durable key/value store of the client: string
// values under string keys in the local SQLite database.
package metadata

import (
	"context"
)

// Repository reads and writes durable key/value pairs.
type Repository interface {
	// Get returns "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

var _ Repository = (*SQLiteRepository)(nil)
