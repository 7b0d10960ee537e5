package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/listing"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes a note permanently and returns the reloaded list. Unknown ids are ignored.
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Param q query string false "Search string of the list being shown"
// @Success 200 {object} notes.ListResponse
// @Router /v1/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	view := listing.New(ctx.Query("q"))
	view.Remove(ctx, ctx.Param("id"))

	return handler.Result{
		Status: http.StatusOK,
		Body: ListResponse{
			Query: view.Query(),
			Cards: view.Cards(),
		},
	}
}
