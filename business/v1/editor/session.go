package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/sys"
)

// Session is one note being edited: a working copy of its title and
// content plus the snapshot they were last committed as.
type Session struct {
	mu      sync.Mutex
	base    note.Note
	isNew   bool
	working Snapshot
	initial Snapshot
}

// Open starts a session. A new note comes from the params and is not
// stored; an existing one is looked up in a fresh load. A new note without
// an id gets one here.
func Open(ctx context.Context, p Params) (*Session, error) {
	if p.IsNew && p.NoteId == "" {
		if p.NewNote != nil && p.NewNote.Id != "" {
			p.NoteId = p.NewNote.Id
		} else {
			p.NoteId = note.NewID()
		}
	}
	if p.NoteId == "" {
		return nil, ErrMissingParams
	}

	var base note.Note
	switch {
	case p.IsNew && p.NewNote != nil:
		base = *p.NewNote
	case p.IsNew:
		base = note.Note{Images: []string{}}
	default:
		found, ok := note.Find(ctx, p.NoteId)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, p.NoteId)
		}
		base = found
	}
	base.Id = p.NoteId
	if base.Images == nil {
		base.Images = []string{}
	}

	snap := Snapshot{Title: base.Title, Content: base.Content}
	return &Session{
		base:    base,
		isNew:   p.IsNew,
		working: snap,
		initial: snap,
	}, nil
}

func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Title = title
}

func (s *Session) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Content = content
}

// Working returns the edited values.
func (s *Session) Working() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working
}

// Committed returns the values as of opening or the last successful save.
func (s *Session) Committed() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initial
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Compare(s.working, s.initial)
}

// IsNew reports whether the note has not been saved by this session yet.
func (s *Session) IsNew() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isNew
}

// Note returns the full note as it would be saved now.
func (s *Session) Note() note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.note()
}

// HeaderTitle is the working title, or NewNoteTitle when it is empty.
func (s *Session) HeaderTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.working.Title == "" {
		return NewNoteTitle
	}
	return s.working.Title
}

// Save commits the working values: added when no stored note has the id,
// updated otherwise. On failure the session stays dirty.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

// Exit decides whether the editor may be left. A clean session always
// leaves. A dirty one needs a choice: without one the caller must prompt
// with Choices; cancel stays; discard leaves; save leaves only if the
// save succeeds.
func (s *Session) Exit(ctx context.Context, choice Choice) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if Compare(s.working, s.initial) == Clean {
		return Leave, nil
	}

	switch choice {
	case ChoiceNone:
		return Prompt, nil
	case ChoiceCancel:
		return Stay, nil
	case ChoiceDiscard:
		return Leave, nil
	case ChoiceSave:
		if err := s.save(ctx); err != nil {
			return Stay, err
		}
		return Leave, nil
	default:
		return Stay, fmt.Errorf("%w: %q", ErrUnknownChoice, choice)
	}
}

func (s *Session) save(ctx context.Context) error {
	n := s.note()
	if _, err := note.Commit(ctx, n); err != nil {
		sys.R.Log.Errorw("editor", "status", "save failed", "id", n.Id, "ERROR", err)
		return fmt.Errorf("%w: %s", ErrSaveFailed, err)
	}
	s.initial = s.working
	s.isNew = false
	return nil
}

func (s *Session) note() note.Note {
	n := s.base
	n.Title = s.working.Title
	n.Content = s.working.Content
	n.Images = append([]string{}, s.base.Images...)
	return n
}
