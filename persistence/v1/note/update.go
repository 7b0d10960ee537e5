package note

import (
	"context"
)

// Update replaces the stored note with the same id as n. An unknown id
// leaves the collection unchanged.
func Update(ctx context.Context, n Note) error {
	return mutate(ctx, func(notes []Note) ([]Note, error) {
		if i := indexOf(notes, n.Id); i >= 0 {
			notes[i] = n
		}
		return notes, nil
	})
}
