// Package metadata is the client's persistent key-value store: a single
// SQLite table that survives restarts. The session keeps its bearer token
// and user id here.
package metadata

import (
	"context"
)

// Repository is the key-value contract. Get returns (nil, nil) for a missing
// key. SetMany and DeleteMany apply all keys or none.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
