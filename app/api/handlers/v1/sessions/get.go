package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find an edit session
// @Tags Session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} sessions.Session
// @Failure 404 {object} handler.Error
// @Router /v1/sessions/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id := ctx.Param("id")
	s, failure := lookup(id)
	if failure != nil {
		return *failure
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   view(id, s),
	}
}

// Edit godoc
// @Summary Change the working title or content
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param edit body sessions.EditRequest true "Fields to change"
// @Success 200 {object} sessions.Session
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/sessions/{id} [patch]
func Edit(ctx *gin.Context) handler.Result {
	id := ctx.Param("id")
	s, failure := lookup(id)
	if failure != nil {
		return *failure
	}

	var e EditRequest
	if err := ctx.ShouldBindJSON(&e); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}
	if e.Title != nil {
		s.SetTitle(*e.Title)
	}
	if e.Content != nil {
		s.SetContent(*e.Content)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   view(id, s),
	}
}
