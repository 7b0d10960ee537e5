package note

import (
	"context"
)

// Insert appends n. It returns ErrDuplicateID, writing nothing, when a note
// with the same id is already stored.
func Insert(ctx context.Context, n Note) error {
	return mutate(ctx, func(notes []Note) ([]Note, error) {
		if indexOf(notes, n.Id) >= 0 {
			return nil, ErrDuplicateID
		}
		return append(notes, n), nil
	})
}

// Upsert inserts n when no stored note has its id and replaces the stored
// one otherwise, reporting which happened. Both run under one lock.
func Upsert(ctx context.Context, n Note) (bool, error) {
	var created bool
	err := mutate(ctx, func(notes []Note) ([]Note, error) {
		i := indexOf(notes, n.Id)
		created = i < 0
		if created {
			return append(notes, n), nil
		}
		notes[i] = n
		return notes, nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func indexOf(notes []Note, id string) int {
	for i, n := range notes {
		if n.Id == id {
			return i
		}
	}
	return -1
}
