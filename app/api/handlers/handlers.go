package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/background"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/notes"
	"github.com/ribgsilva/note-keeper/app/api/handlers/v1/sessions"
	"github.com/ribgsilva/note-keeper/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.GET("/v1/notes", handler.Wrapper(notes.List))
	r.GET("/v1/notes/:id", handler.Wrapper(notes.Get))
	r.DELETE("/v1/notes/:id", handler.Wrapper(notes.Delete))

	r.POST("/v1/sessions", handler.Wrapper(sessions.Open))
	r.POST("/v1/sessions/new", handler.Wrapper(sessions.New))
	r.GET("/v1/sessions/:id", handler.Wrapper(sessions.Get))
	r.PATCH("/v1/sessions/:id", handler.Wrapper(sessions.Edit))
	r.POST("/v1/sessions/:id/save", handler.Wrapper(sessions.Save))
	r.POST("/v1/sessions/:id/exit", handler.Wrapper(sessions.Exit))

	r.GET("/v1/background", handler.Wrapper(background.Get))
	r.PUT("/v1/background", handler.Wrapper(background.Put))
	r.DELETE("/v1/background", handler.Wrapper(background.Delete))
}
