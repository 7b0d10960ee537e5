package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	found, ok := note.Find(ctx, ctx.Param("id"))
	if !ok {
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
