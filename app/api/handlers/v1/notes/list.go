package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/listing"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

type ListResponse struct {
	Query string         `json:"query" example:"mil"`
	Cards []listing.Card `json:"cards"`
}

// List godoc
// @Summary List notes
// @Description Reloads every note and returns the ones whose title or content contains q, ignoring case
// @Tags Note
// @Produce json
// @Param q query string false "Search string"
// @Success 200 {object} notes.ListResponse
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	view := listing.Open(ctx, ctx.Query("q"))

	return handler.Result{
		Status: http.StatusOK,
		Body: ListResponse{
			Query: view.Query(),
			Cards: view.Cards(),
		},
	}
}
