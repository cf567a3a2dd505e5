package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/cache"
	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/domain/menu"
	"github.com/rasahub/rasahub/internal/storage"
)

type MenuStore interface {
	List(ctx context.Context) ([]menu.Menu, error)
	GetByID(ctx context.Context, id string) (menu.Menu, error)
	Insert(ctx context.Context, m menu.Menu) (string, error)
	Update(ctx context.Context, id string, m menu.Menu) error
	Delete(ctx context.Context, id string) error
}

// MenusHandler is the admin side of the menu collection. Every write
// invalidates the public listing snapshot.
type MenusHandler struct {
	repo    MenuStore
	saver   *storage.Saver
	listing *cache.MenuListing
}

func NewMenusHandler(repo MenuStore, saver *storage.Saver, listing *cache.MenuListing) *MenusHandler {
	return &MenusHandler{repo: repo, saver: saver, listing: listing}
}

func (h *MenusHandler) Manage(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, err := h.repo.List(cctx)

	if err != nil {
		Render(ctx, "kelola_menu.html", gin.H{
			"menus":              []menu.Menu{},
			"count_per_category": map[string]int{},
			"total_menus":        0,
		})
		return
	}

	countPerCategory := make(map[string]int)

	for _, m := range items {
		category := m.Category
		if category == "" {
			category = "Uncategorized"
		}
		countPerCategory[category]++
	}

	Render(ctx, "kelola_menu.html", gin.H{
		"menus":              items,
		"count_per_category": countPerCategory,
		"total_menus":        len(items),
	})
}

func (h *MenusHandler) Add(ctx *gin.Context) {
	var req menu.UpsertMenuRequest

	if !BindForm(ctx, &req, "/kelolaMenu") {
		return
	}

	m := menu.Menu{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
	}

	// Menu photo is optional; a disallowed extension just means no photo.
	if fh, err := ctx.FormFile("fotoMenu"); err == nil {
		if path, err := h.saver.Save(fh); err == nil {
			m.Photo = path
		}
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	if _, err := h.repo.Insert(cctx, m); err != nil {
		RedirectWithFlash(ctx, "/kelolaMenu", "danger", "Gagal menambah menu")
		return
	}

	h.listing.Invalidate()

	RedirectWithFlash(ctx, "/kelolaMenu", "success", "Tambah menu berhasil")
}

func (h *MenusHandler) EditForm(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	m, err := h.repo.GetByID(cctx, ctx.Param("id"))

	if err != nil {
		RedirectWithFlash(ctx, "/kelolaMenu", "danger", "Menu tidak ditemukan")
		return
	}

	Render(ctx, "edit_menu.html", gin.H{"menu": m})
}

func (h *MenusHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req menu.UpsertMenuRequest

	if !BindForm(ctx, &req, "/editMenu/"+id) {
		return
	}

	m := menu.Menu{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
	}

	if fh, err := ctx.FormFile("fotoMenu"); err == nil {
		if path, err := h.saver.Save(fh); err == nil {
			m.Photo = path
		}
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	if err := h.repo.Update(cctx, id, m); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			RedirectWithFlash(ctx, "/kelolaMenu", "danger", "Menu tidak ditemukan")
			return
		}

		RedirectWithFlash(ctx, "/kelolaMenu", "danger", "Gagal memperbarui menu")
		return
	}

	h.listing.Invalidate()

	RedirectWithFlash(ctx, "/kelolaMenu", "success", "Menu berhasil diperbarui")
}

func (h *MenusHandler) Delete(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	if err := h.repo.Delete(cctx, ctx.Param("id")); err != nil {
		RedirectWithFlash(ctx, "/kelolaMenu", "danger", "Gagal menghapus menu")
		return
	}

	h.listing.Invalidate()

	RedirectWithFlash(ctx, "/kelolaMenu", "success", "Menu berhasil dihapus")
}
