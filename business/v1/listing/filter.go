// Package listing derives what the notes list shows from the stored
// collection and the current search string.
package listing

import (
	"strings"

	"github.com/ribgsilva/note-keeper/business/v1/note"
)

// Filter returns the notes whose title or content contains query, ignoring
// case, in collection order. An empty query keeps every note.
func Filter(notes []note.Note, query string) []note.Note {
	q := strings.ToLower(query)
	out := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}
