package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatube/middleware"
	"yatube/utils"
)

// render merges the session user into every template context so the shared
// navigation can show login state.
func render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := middleware.GetCurrentUser(ctx); ok {
		data["User"] = user
	}
	ctx.HTML(status, name, data)
}

func renderNotFound(ctx *gin.Context) {
	render(ctx, http.StatusNotFound, "404.html", gin.H{"Path": ctx.Request.URL.Path})
}

func renderServerError(ctx *gin.Context, err error) {
	if utils.Sugar != nil {
		utils.Sugar.Errorw("request failed",
			"path", ctx.Request.URL.Path,
			"error", err,
		)
	}
	render(ctx, http.StatusInternalServerError, "500.html", gin.H{})
}
