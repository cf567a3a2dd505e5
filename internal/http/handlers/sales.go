package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/sales"
)

// SalesHandler serves the placeholder series the dashboard charts consume.
type SalesHandler struct {
	cache *sales.Cache
}

func NewSalesHandler(cache *sales.Cache) *SalesHandler {
	return &SalesHandler{cache: cache}
}

func (h *SalesHandler) Data(ctx *gin.Context) {
	period := ctx.DefaultQuery("period", sales.PeriodWeekly)

	points := sales.Fetch(ctx.Request.Context(), h.cache, period)

	ctx.JSON(http.StatusOK, points)
}
