package note

import "errors"

// DefaultKey is the storage key of the notes blob when none is configured.
const DefaultKey = "@notes"

var (
	// ErrDuplicateID is returned by Insert when a note with the same id is stored.
	ErrDuplicateID = errors.New("note id already exists")
	// ErrCorruptBlob is returned when the stored blob is not a json array of notes.
	ErrCorruptBlob = errors.New("stored notes are not valid json")
)

// Note is one stored record. Decode always returns it fully populated:
// Images is never nil and an empty BackgroundImage is nil.
type Note struct {
	Id              string   `json:"id"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Images          []string `json:"images"`
	BackgroundImage *string  `json:"backgroundImage"`
}
