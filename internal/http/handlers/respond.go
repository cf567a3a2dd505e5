package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/flash"
	"github.com/rasahub/rasahub/internal/http/middlewares"
)

// Render wraps ctx.HTML so every page gets the viewer role and any pending
// flash message without each handler repeating the plumbing.
func Render(ctx *gin.Context, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	role, ok := middlewares.RoleFromContext(ctx)
	if !ok {
		role = user.RolePelanggan
	}
	data["user_role"] = role

	if msg, ok := flash.Take(ctx); ok {
		data["flash"] = msg
	}

	ctx.HTML(http.StatusOK, tmpl, data)
}

// RedirectWithFlash queues a one-shot message and 303s to the target page.
func RedirectWithFlash(ctx *gin.Context, location, level, text string) {
	flash.Set(ctx, level, text)
	ctx.Redirect(http.StatusSeeOther, location)
}

func Redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusSeeOther, location)
}
