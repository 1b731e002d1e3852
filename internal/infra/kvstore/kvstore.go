// Package kvstore provides the session snapshot store: a flat, string
// key-value contract with pluggable backends. It is the server-side
// generalization of the storefront's origin-scoped browser storage.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	// Get returns the stored value, or ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}
