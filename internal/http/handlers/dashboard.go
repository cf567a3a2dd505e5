package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/sales"
)

type RoleCounter interface {
	CountByRole(ctx context.Context) (map[user.Role]int, error)
}

type DashboardHandler struct {
	users RoleCounter
	menus MenuLister
	sales *sales.Cache
}

func NewDashboardHandler(users RoleCounter, menus MenuLister, salesCache *sales.Cache) *DashboardHandler {
	return &DashboardHandler{users: users, menus: menus, sales: salesCache}
}

func (h *DashboardHandler) Dashboard(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	countPerRole, err := h.users.CountByRole(cctx)

	if err != nil {
		countPerRole = map[user.Role]int{}
	}

	totalMenus := 0

	if items, err := h.menus.List(cctx); err == nil {
		totalMenus = len(items)
	}

	totalSales := 0

	for _, p := range sales.Fetch(cctx, h.sales, sales.PeriodWeekly) {
		totalSales += p.Sales
	}

	Render(ctx, "dashboard.html", gin.H{
		"count_per_role": countPerRole,
		"total_menus":    totalMenus,
		"total_sales":    totalSales,
	})
}

// Stub management pages; the underlying features are not built yet.

func (h *DashboardHandler) ManageOrders(ctx *gin.Context) {
	Render(ctx, "kelola_pesanan.html", nil)
}

func (h *DashboardHandler) ManageAccounts(ctx *gin.Context) {
	Render(ctx, "kelola_rekening.html", nil)
}

func (h *DashboardHandler) ManageAdmins(ctx *gin.Context) {
	Render(ctx, "kelola_admin.html", nil)
}
