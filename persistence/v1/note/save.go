package note

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ribgsilva/note-keeper/persistence/v1/kv"
	"github.com/ribgsilva/note-keeper/persistence/v1/storage"
	"github.com/ribgsilva/note-keeper/sys"
)

// mu serializes every load, change, save cycle in this process so
// overlapping mutations cannot lose each other's writes.
var mu sync.Mutex

// Save overwrites the stored blob with notes.
func Save(ctx context.Context, notes []Note) error {
	mu.Lock()
	defer mu.Unlock()

	dbCtx, dbCancel := storage.Timeout(ctx)
	defer dbCancel()
	return save(dbCtx, notes)
}

func save(ctx context.Context, notes []Note) error {
	blob, err := Encode(notes)
	if err != nil {
		return err
	}
	if err := sys.R.Storage.Set(ctx, key(), blob); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}
	return nil
}

// mutate loads the collection, applies change and saves the result while
// holding mu. Stores implementing kv.Updater run the cycle atomically
// against other processes too; change may then run more than once. A
// corrupt blob is treated as empty and gets overwritten; any other read
// failure aborts before anything is written.
func mutate(ctx context.Context, change func([]Note) ([]Note, error)) error {
	mu.Lock()
	defer mu.Unlock()

	dbCtx, dbCancel := storage.Timeout(ctx)
	defer dbCancel()

	if u, ok := sys.R.Storage.(kv.Updater); ok {
		err := u.Update(dbCtx, key(), func(blob string, found bool) (string, error) {
			notes := []Note{}
			if found {
				notes = decodeOrDiscard(blob)
			}
			next, err := change(notes)
			if err != nil {
				return "", err
			}
			return Encode(next)
		})
		if err != nil && !errors.Is(err, ErrDuplicateID) {
			return fmt.Errorf("failed to update notes: %w", err)
		}
		return err
	}

	notes, err := load(dbCtx)
	switch {
	case errors.Is(err, ErrCorruptBlob):
		logDiscard(err)
	case err != nil:
		return err
	}

	next, err := change(notes)
	if err != nil {
		return err
	}
	return save(dbCtx, next)
}

func decodeOrDiscard(blob string) []Note {
	notes, err := Decode(blob)
	if err != nil {
		logDiscard(err)
	}
	return notes
}

func logDiscard(err error) {
	sys.R.Log.Warnw("notes", "status", "discarding corrupt blob", "key", key(), "ERROR", err)
}
