package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/http/middlewares"
	"github.com/rasahub/rasahub/internal/storage"
)

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id string, upd user.ProfileUpdate) error
}

type ProfileHandler struct {
	users ProfileUpdater
	saver *storage.Saver
}

func NewProfileHandler(users ProfileUpdater, saver *storage.Saver) *ProfileHandler {
	return &ProfileHandler{users: users, saver: saver}
}

type profileForm struct {
	Name    string `form:"nama" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"notlp" binding:"required"`
	Address string `form:"alamat" binding:"required"`
}

func (h *ProfileHandler) Show(ctx *gin.Context) {
	u, _ := middlewares.CurrentUser(ctx)

	Render(ctx, "profil.html", gin.H{"user": u})
}

func (h *ProfileHandler) EditForm(ctx *gin.Context) {
	u, _ := middlewares.CurrentUser(ctx)

	Render(ctx, "edit_profil.html", gin.H{"user": u})
}

func (h *ProfileHandler) Update(ctx *gin.Context) {
	u, _ := middlewares.CurrentUser(ctx)

	var form profileForm

	if !BindForm(ctx, &form, "/editProfil") {
		return
	}

	upd := user.ProfileUpdate{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
	}

	// A missing or disallowed upload keeps the stored photo.
	if fh, err := ctx.FormFile("fotoprofil"); err == nil {
		if path, err := h.saver.Save(fh); err == nil {
			upd.ProfilePhoto = path
		}
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	if err := h.users.UpdateProfile(cctx, u.ID, upd); err != nil {
		RedirectWithFlash(ctx, "/editProfil", "danger", "Gagal memperbarui profil")
		return
	}

	RedirectWithFlash(ctx, "/profil", "success", "Profil berhasil diperbarui")
}
