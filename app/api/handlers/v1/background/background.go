package background

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/business/v1/background"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
	"net/http"
)

type Change struct {
	URI string `json:"uri" example:"file:///photos/bg.jpg"`
}

// Get godoc
// @Summary Current list background
// @Tags Background
// @Produce json
// @Success 200 {object} background.Background
// @Router /v1/background [get]
func Get(ctx *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   background.Get(ctx),
	}
}

// Put godoc
// @Summary Change the list background
// @Tags Background
// @Accept json
// @Produce json
// @Param change body background.Change true "Picked image"
// @Success 200 {object} background.Background
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/background [put]
func Put(ctx *gin.Context) handler.Result {
	var c Change
	if err := ctx.ShouldBindJSON(&c); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	bg, err := background.Set(ctx, c.URI)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "failed to save the background image"},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   bg,
	}
}

// Delete godoc
// @Summary Reset the list background to the default image
// @Tags Background
// @Produce json
// @Success 200 {object} background.Background
// @Failure 500 {object} handler.Error
// @Router /v1/background [delete]
func Delete(ctx *gin.Context) handler.Result {
	bg, err := background.Reset(ctx)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "failed to reset the background image"},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   bg,
	}
}
