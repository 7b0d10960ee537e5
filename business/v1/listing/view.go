package listing

import (
	"context"

	"github.com/ribgsilva/note-keeper/business/v1/note"
)

// View is the transient state of the notes list: the collection as last
// loaded and the search string. Nothing in it outlives the screen.
type View struct {
	notes   []note.Note
	query   string
	visible []note.Note
}

// New returns a view with nothing loaded yet.
func New(query string) *View {
	return &View{query: query, notes: []note.Note{}, visible: []note.Note{}}
}

// Open loads the collection for a list activation.
func Open(ctx context.Context, query string) *View {
	v := New(query)
	v.Refresh(ctx)
	return v
}

// Refresh reloads the full collection and recomputes the visible notes.
func (v *View) Refresh(ctx context.Context) {
	v.notes = note.Load(ctx)
	v.visible = Filter(v.notes, v.query)
}

// Search changes the search string.
func (v *View) Search(query string) {
	v.query = query
	v.visible = Filter(v.notes, v.query)
}

// Query returns the current search string.
func (v *View) Query() string {
	return v.query
}

// All returns the loaded collection.
func (v *View) All() []note.Note {
	return v.notes
}

// Visible returns the notes matching the search string.
func (v *View) Visible() []note.Note {
	return v.visible
}

// Cards returns the visible notes as list entries.
func (v *View) Cards() []Card {
	cards := make([]Card, 0, len(v.visible))
	for _, n := range v.visible {
		cards = append(cards, NewCard(n))
	}
	return cards
}

// Remove deletes a note and reloads the list.
func (v *View) Remove(ctx context.Context, id string) {
	note.Delete(ctx, id)
	v.Refresh(ctx)
}
