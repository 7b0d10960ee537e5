package editor

import (
	"errors"
	"fmt"

	"github.com/ribgsilva/note-keeper/business/v1/note"
)

var (
	// ErrMissingParams is returned when an editor is opened without a note id.
	ErrMissingParams = errors.New("missing navigation parameters")
	// ErrNoteNotFound is returned when an existing note to edit is not stored.
	ErrNoteNotFound = errors.New("note not found")
	// ErrSaveFailed wraps any storage failure of a save.
	ErrSaveFailed = errors.New("failed to save the note")
	// ErrSessionNotFound is returned by a Registry for unknown or closed sessions.
	ErrSessionNotFound = errors.New("edit session not found")
	// ErrUnknownChoice is returned by Exit for a choice it does not know.
	ErrUnknownChoice = errors.New("unknown exit choice")
)

// NewNoteTitle is the header of an editor whose note has no title yet.
const NewNoteTitle = "New note"

// Params select what an editor opens: an existing note by id, or a new
// note carried along until its first save.
type Params struct {
	NoteId  string     `json:"noteId" example:"0b7e2c4a-3f7d-4b8e-9a51-2c1f0e6d9b3a"`
	IsNew   bool       `json:"isNew" example:"false"`
	NewNote *note.Note `json:"newNote,omitempty"`
}

// Draft returns the params of an editor on a brand new, unsaved note.
func Draft() Params {
	n := note.New()
	return Params{NoteId: n.Id, IsNew: true, NewNote: &n}
}

// State says whether a session holds unsaved edits.
type State int

const (
	Clean State = iota
	Dirty
)

func (s State) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "clean"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "clean":
		*s = Clean
	case "dirty":
		*s = Dirty
	default:
		return fmt.Errorf("unknown session state %q", text)
	}
	return nil
}

// Snapshot is the editable part of a note.
type Snapshot struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Compare returns Dirty when working differs from committed in any field.
func Compare(working, committed Snapshot) State {
	if working != committed {
		return Dirty
	}
	return Clean
}

// Choice is the user's answer to the unsaved changes prompt.
type Choice string

const (
	ChoiceNone    Choice = ""
	ChoiceCancel  Choice = "cancel"
	ChoiceDiscard Choice = "discard"
	ChoiceSave    Choice = "save"
)

// Choices are offered, in order, when leaving a dirty session.
var Choices = []Choice{ChoiceCancel, ChoiceDiscard, ChoiceSave}

// Outcome tells the caller what to do after an exit attempt.
type Outcome string

const (
	Stay   Outcome = "stay"
	Leave  Outcome = "leave"
	Prompt Outcome = "prompt"
)
