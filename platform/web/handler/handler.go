package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a handler wants written back to the client
type Result struct {
	Status int
	Body   any
}

// Error is the body used for every failure notice
type Error struct {
	Message  string `json:"message" example:"note not found"`
	Redirect string `json:"redirect,omitempty" example:"/v1/notes"`
}

// Func is a gin handler that returns its response instead of writing it
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func to gin, writing the Result as json
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
