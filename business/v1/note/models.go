package note

import "github.com/ribgsilva/note-keeper/persistence/v1/note"

// ErrDuplicateID is returned by Create when a note with the id is stored.
var ErrDuplicateID = note.ErrDuplicateID

// Note is a user-authored record: title, free text, attached images and an
// optional per-note background.
type Note struct {
	Id              string   `json:"id" example:"0b7e2c4a-3f7d-4b8e-9a51-2c1f0e6d9b3a"`
	Title           string   `json:"title" example:"Grocery"`
	Content         string   `json:"content" example:"milk"`
	Images          []string `json:"images"`
	BackgroundImage *string  `json:"backgroundImage" example:"file:///photos/bg.jpg"`
}

// Event types applied by the messaging consumer.
const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

// Event is a note change received from the topic. Data holds a Note for
// create and update, and a Deleted for delete.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Deleted struct {
	Id string `json:"id"`
}

// Equal reports whether both notes hold the same values.
func (n Note) Equal(o Note) bool {
	if n.Id != o.Id || n.Title != o.Title || n.Content != o.Content {
		return false
	}
	if len(n.Images) != len(o.Images) {
		return false
	}
	for i := range n.Images {
		if n.Images[i] != o.Images[i] {
			return false
		}
	}
	switch {
	case n.BackgroundImage == nil && o.BackgroundImage == nil:
		return true
	case n.BackgroundImage == nil || o.BackgroundImage == nil:
		return false
	default:
		return *n.BackgroundImage == *o.BackgroundImage
	}
}

func fromStored(notes []note.Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, Note(n))
	}
	return out
}

func toStored(notes []Note) []note.Note {
	out := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, note.Note(n))
	}
	return out
}
