package note

import (
	"context"
	"errors"

	"github.com/ribgsilva/note-keeper/persistence/v1/note"
	"github.com/ribgsilva/note-keeper/sys"
)

// Load returns every stored note in creation order. Failures are logged
// and reported as an empty collection.
func Load(ctx context.Context) []Note {
	notes, err := note.Load(ctx)
	if err != nil {
		sys.R.Log.Errorw("notes", "status", "load failed", "ERROR", err)
	}
	return fromStored(notes)
}

// Save overwrites the stored collection. Failures are logged.
func Save(ctx context.Context, notes []Note) {
	if err := note.Save(ctx, toStored(notes)); err != nil {
		sys.R.Log.Errorw("notes", "status", "save failed", "ERROR", err)
	}
}

// Add appends n. A duplicate id is a logged no-op.
func Add(ctx context.Context, n Note) {
	if err := Create(ctx, n); err != nil && !errors.Is(err, ErrDuplicateID) {
		sys.R.Log.Errorw("notes", "status", "add failed", "id", n.Id, "ERROR", err)
	}
}

// Update replaces the stored note with n's id. Unknown ids are ignored.
func Update(ctx context.Context, n Note) {
	if err := Change(ctx, n); err != nil {
		sys.R.Log.Errorw("notes", "status", "update failed", "id", n.Id, "ERROR", err)
	}
}

// Delete removes the note with the given id.
func Delete(ctx context.Context, id string) {
	if err := Remove(ctx, id); err != nil {
		sys.R.Log.Errorw("notes", "status", "delete failed", "id", id, "ERROR", err)
	}
}

// Create is Add returning failures. A duplicate id is logged and returned
// as ErrDuplicateID.
func Create(ctx context.Context, n Note) error {
	err := note.Insert(ctx, note.Note(n))
	if errors.Is(err, note.ErrDuplicateID) {
		sys.R.Log.Warnw("notes", "status", "note with id already exists", "id", n.Id)
	}
	return err
}

// Change is Update returning failures.
func Change(ctx context.Context, n Note) error {
	return note.Update(ctx, note.Note(n))
}

// Remove is Delete returning failures.
func Remove(ctx context.Context, id string) error {
	return note.Delete(ctx, id)
}

// Find looks a note up by id in a fresh load.
func Find(ctx context.Context, id string) (Note, bool) {
	for _, n := range Load(ctx) {
		if n.Id == id {
			return n, true
		}
	}
	return Note{}, false
}

// Commit stores n, adding it when no note has its id and updating it
// otherwise. Unlike the other operations it returns storage failures so an
// editor can keep the user's edits.
func Commit(ctx context.Context, n Note) (bool, error) {
	created, err := note.Upsert(ctx, note.Note(n))
	if err != nil {
		return false, err
	}
	if created {
		sys.R.Log.Infow("notes", "status", "added", "id", n.Id)
	} else {
		sys.R.Log.Infow("notes", "status", "updated", "id", n.Id)
	}
	return created, nil
}
