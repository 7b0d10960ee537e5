// Package kvtest provides kv stores for tests.
package kvtest

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/ribgsilva/note-keeper/persistence/v1/kv"
	"gocloud.dev/blob/memblob"
)

// ErrInjected is returned by a Faulty store while failing.
var ErrInjected = errors.New("kvtest: injected failure")

// New returns an empty in-memory store.
func New() kv.Store {
	return kv.NewBlob(memblob.OpenBucket(nil))
}

// Faulty wraps a store and fails reads or writes on demand.
type Faulty struct {
	kv.Store
	FailGet atomic.Bool
	FailSet atomic.Bool
	Sets    atomic.Int64
}

// NewFaulty wraps an in-memory store.
func NewFaulty() *Faulty {
	return &Faulty{Store: New()}
}

func (f *Faulty) Get(ctx context.Context, key string) (string, error) {
	if f.FailGet.Load() {
		return "", ErrInjected
	}
	return f.Store.Get(ctx, key)
}

func (f *Faulty) Set(ctx context.Context, key, value string) error {
	if f.FailSet.Load() {
		return ErrInjected
	}
	f.Sets.Add(1)
	return f.Store.Set(ctx, key, value)
}

func (f *Faulty) Delete(ctx context.Context, key string) error {
	if f.FailSet.Load() {
		return ErrInjected
	}
	return f.Store.Delete(ctx, key)
}
