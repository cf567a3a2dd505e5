package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/cache"
	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/domain/menu"
)

type MenuLister interface {
	List(ctx context.Context) ([]menu.Menu, error)
	GetByID(ctx context.Context, id string) (menu.Menu, error)
}

// PagesHandler serves the customer-facing pages. Cart, checkout and payment
// are static placeholders; the menu pages read the store.
type PagesHandler struct {
	menus   MenuLister
	listing *cache.MenuListing
}

func NewPagesHandler(menus MenuLister, listing *cache.MenuListing) *PagesHandler {
	return &PagesHandler{menus: menus, listing: listing}
}

func (h *PagesHandler) Index(ctx *gin.Context) {
	Render(ctx, "index.html", nil)
}

func (h *PagesHandler) Menu(ctx *gin.Context) {
	items, ok := h.listing.Get()

	if !ok {
		cctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()

		fresh, err := h.menus.List(cctx)

		if err != nil {
			Render(ctx, "menu.html", gin.H{"menus": []menu.Menu{}})
			return
		}

		h.listing.Set(fresh)
		items = fresh
	}

	Render(ctx, "menu.html", gin.H{"menus": items})
}

func (h *PagesHandler) MenuDetail(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	m, err := h.menus.GetByID(cctx, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			RedirectWithFlash(ctx, "/menu", "danger", "Menu tidak ditemukan")
			return
		}

		RedirectWithFlash(ctx, "/menu", "danger", "Gagal memuat menu")
		return
	}

	Render(ctx, "detail_menu.html", gin.H{"menu": m})
}

func (h *PagesHandler) About(ctx *gin.Context) {
	Render(ctx, "tentang.html", nil)
}

func (h *PagesHandler) Orders(ctx *gin.Context) {
	Render(ctx, "pesanan.html", nil)
}

func (h *PagesHandler) Payment(ctx *gin.Context) {
	Render(ctx, "pembayaran.html", nil)
}

func (h *PagesHandler) Cart(ctx *gin.Context) {
	Render(ctx, "keranjang.html", nil)
}

func (h *PagesHandler) Checkout(ctx *gin.Context) {
	Render(ctx, "checkout.html", nil)
}
