package sessions

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/editor"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

// Save godoc
// @Summary Save the note
// @Description Adds the note when it is not stored yet, updates it otherwise. On failure the edits stay in the session.
// @Tags Session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} sessions.Session
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/sessions/{id}/save [post]
func Save(ctx *gin.Context) handler.Result {
	id := ctx.Param("id")
	s, failure := lookup(id)
	if failure != nil {
		return *failure
	}

	if err := s.Save(ctx); err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: editor.ErrSaveFailed.Error()},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   view(id, s),
	}
}

// Exit godoc
// @Summary Leave the editor
// @Description Leaves right away when nothing changed. With unsaved changes and no choice it answers 409 with the choices to prompt for.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param choice body sessions.ExitRequest false "Answer to the unsaved changes prompt"
// @Success 200 {object} sessions.ExitResponse
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 409 {object} sessions.ExitResponse
// @Failure 500 {object} handler.Error
// @Router /v1/sessions/{id}/exit [post]
func Exit(ctx *gin.Context) handler.Result {
	id := ctx.Param("id")
	s, failure := lookup(id)
	if failure != nil {
		return *failure
	}

	var req ExitRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid body"},
			}
		}
	}

	outcome, err := s.Exit(ctx, req.Choice)
	switch {
	case errors.Is(err, editor.ErrSaveFailed):
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: editor.ErrSaveFailed.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	switch outcome {
	case editor.Prompt:
		return handler.Result{
			Status: http.StatusConflict,
			Body: ExitResponse{
				Outcome: outcome,
				Message: "unsaved changes",
				Choices: editor.Choices,
			},
		}
	case editor.Leave:
		registry.Close(id)
		return handler.Result{
			Status: http.StatusOK,
			Body:   ExitResponse{Outcome: outcome, Redirect: ListPath},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   ExitResponse{Outcome: outcome},
		}
	}
}
