package note

import (
	"context"
)

// Delete removes every stored note with the given id.
func Delete(ctx context.Context, id string) error {
	return mutate(ctx, func(notes []Note) ([]Note, error) {
		kept := notes[:0]
		for _, n := range notes {
			if n.Id != id {
				kept = append(kept, n)
			}
		}
		return kept, nil
	})
}
