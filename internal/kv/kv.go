// Package kv is the key-value storage port behind the persistence
// adapter. Values are opaque strings; keys are scoped per deployment the
// way browser storage is scoped per origin.
package kv

import "context"

type Store interface {
	// Get returns the stored value and whether the key was present.
	// Absence is normal state, not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Ping reports whether the backing store can handle requests.
	Ping(ctx context.Context) error
}
