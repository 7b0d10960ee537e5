// Package preference persists single string settings, each under its own key.
package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/note-keeper/persistence/v1/kv"
	"github.com/ribgsilva/note-keeper/persistence/v1/storage"
	"github.com/ribgsilva/note-keeper/sys"
)

// DefaultBackgroundKey is the key of the background image uri when none is configured.
const DefaultBackgroundKey = "backgroundImage"

// Find returns the stored value and whether one is stored. An empty value
// counts as not stored.
func Find(ctx context.Context, key string) (string, bool, error) {
	dbCtx, dbCancel := storage.Timeout(ctx)
	defer dbCancel()

	v, err := sys.R.Storage.Get(dbCtx, key)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return v, v != "", nil
}

func Store(ctx context.Context, key, value string) error {
	dbCtx, dbCancel := storage.Timeout(ctx)
	defer dbCancel()

	if err := sys.R.Storage.Set(dbCtx, key, value); err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

func Remove(ctx context.Context, key string) error {
	dbCtx, dbCancel := storage.Timeout(ctx)
	defer dbCancel()

	if err := sys.R.Storage.Delete(dbCtx, key); err != nil {
		return fmt.Errorf("failed to remove preference %s: %w", key, err)
	}
	return nil
}

// BackgroundKey is the configured key of the background image uri.
func BackgroundKey() string {
	if k := sys.Configs.Storage.BackgroundKey; k != "" {
		return k
	}
	return DefaultBackgroundKey
}
