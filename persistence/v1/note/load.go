package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/note-keeper/persistence/v1/kv"
	"github.com/ribgsilva/note-keeper/persistence/v1/storage"
	"github.com/ribgsilva/note-keeper/sys"
)

// Load reads the whole collection. An absent blob is an empty collection.
// On error the returned slice is empty, never nil.
func Load(ctx context.Context) ([]Note, error) {
	dbCtx, dbCancel := storage.Timeout(ctx)
	defer dbCancel()
	return load(dbCtx)
}

func load(ctx context.Context) ([]Note, error) {
	blob, err := sys.R.Storage.Get(ctx, key())
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return []Note{}, nil
	case err != nil:
		return []Note{}, fmt.Errorf("failed to read notes: %w", err)
	}
	return Decode(blob)
}

func key() string {
	if k := sys.Configs.Storage.NotesKey; k != "" {
		return k
	}
	return DefaultKey
}
