package sessions

import (
	"errors"
	"github.com/ribgsilva/note-keeper/business/v1/editor"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

// ListPath is where clients go back to after leaving an editor.
const ListPath = "/v1/notes"

// registry holds the sessions opened through the api; idle ones expire.
var registry = editor.NewRegistry(editor.DefaultIdle)

type Session struct {
	Id          string       `json:"id" example:"5f2a3c1e-8d4b-4a6f-b7e9-0c1d2e3f4a5b"`
	HeaderTitle string       `json:"headerTitle" example:"Grocery"`
	State       editor.State `json:"state" swaggertype:"string" enums:"clean,dirty" example:"dirty"`
	IsNew       bool         `json:"isNew" example:"false"`
	Note        note.Note    `json:"note"`
}

type EditRequest struct {
	Title   *string `json:"title" example:"Grocery"`
	Content *string `json:"content" example:"milk"`
}

type ExitRequest struct {
	Choice editor.Choice `json:"choice" enums:"cancel,discard,save" example:"save"`
}

type ExitResponse struct {
	Outcome  editor.Outcome  `json:"outcome" enums:"stay,leave,prompt" example:"prompt"`
	Message  string          `json:"message,omitempty" example:"unsaved changes"`
	Choices  []editor.Choice `json:"choices,omitempty"`
	Redirect string          `json:"redirect,omitempty" example:"/v1/notes"`
}

func view(id string, s *editor.Session) Session {
	return Session{
		Id:          id,
		HeaderTitle: s.HeaderTitle(),
		State:       s.State(),
		IsNew:       s.IsNew(),
		Note:        s.Note(),
	}
}

func lookup(id string) (*editor.Session, *handler.Result) {
	s, err := registry.Get(id)
	if err != nil {
		return nil, &handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: err.Error(), Redirect: ListPath},
		}
	}
	return s, nil
}

func openFailure(err error) handler.Result {
	switch {
	case errors.Is(err, editor.ErrMissingParams), errors.Is(err, editor.ErrNoteNotFound):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error(), Redirect: ListPath},
		}
	default:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}
