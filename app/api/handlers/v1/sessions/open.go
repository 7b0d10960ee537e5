package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/editor"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

// Open godoc
// @Summary Open an editor
// @Description Opens an edit session from navigation params. A body with only isNew set opens a new note with a generated id. Without a noteId for an existing note the client is sent back to the list.
// @Tags Session
// @Accept json
// @Produce json
// @Param params body editor.Params true "Navigation params"
// @Success 201 {object} sessions.Session
// @Failure 400 {object} handler.Error
// @Router /v1/sessions [post]
func Open(ctx *gin.Context) handler.Result {
	var p editor.Params
	if err := ctx.ShouldBindJSON(&p); err != nil {
		return openFailure(editor.ErrMissingParams)
	}
	return open(ctx, p)
}

// New godoc
// @Summary Start a new note
// @Description Generates an id and opens an editor on an empty note. Nothing is stored until the session saves.
// @Tags Session
// @Produce json
// @Success 201 {object} sessions.Session
// @Router /v1/sessions/new [post]
func New(ctx *gin.Context) handler.Result {
	return open(ctx, editor.Draft())
}

func open(ctx *gin.Context, p editor.Params) handler.Result {
	id, s, err := registry.Open(ctx, p)
	if err != nil {
		return openFailure(err)
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   view(id, s),
	}
}
