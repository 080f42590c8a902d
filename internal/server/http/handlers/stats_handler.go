package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/server/http/dto"
)

// StatsHandler exposes the admin dashboard figures.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Summary handles GET /admin/stats.
func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(stats))
}

// Detailed handles GET /admin/detailed-stats.
func (h *StatsHandler) Detailed(c *gin.Context) {
	stats, err := h.facade.DetailedStats(c.Request.Context())
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, dto.DetailedStatsResponse{
		StatsResponse: toStatsResponse(stats),
		TodayRevenue:  stats.TodayRevenue,
	})
}

func toStatsResponse(stats *model.OrderStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalOrders:   stats.TotalOrders,
		PendingOrders: stats.PendingOrders,
		ReadyOrders:   stats.ReadyOrders,
		TotalRevenue:  stats.TotalRevenue,
	}
}
