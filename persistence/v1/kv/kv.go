// Package kv is the key-value boundary the note collection and the user
// preferences are persisted through. Values are whole string blobs: a Set
// always overwrites the full value stored under a key.
package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when nothing is stored under the key.
	ErrNotFound = errors.New("kv: key not found")
	// ErrConflict is returned by Update when other writers kept changing the
	// key through every retry.
	ErrConflict = errors.New("kv: concurrent update conflict")
)

// Store reads and writes string blobs by key.
type Store interface {
	// Get returns the value under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// UpdateFunc computes the new value from the current one. found is false
// when nothing is stored. An error aborts the update without writing.
type UpdateFunc func(current string, found bool) (string, error)

// Updater is implemented by stores that can read and rewrite one key
// atomically across processes. fn may run more than once.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
