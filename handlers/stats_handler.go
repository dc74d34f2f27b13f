package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsportal/helper"
	"newsportal/services"
)

type StatsHandler struct {
	statsService services.StatsService
	Helper       *helper.HTTPHelper
}

func NewStatsHandler(statsService services.StatsService, h *helper.HTTPHelper) *StatsHandler {
	return &StatsHandler{statsService: statsService, Helper: h}
}

type daysQuery struct {
	Days int `form:"days"`
}

func (h *StatsHandler) GetOverview(c *gin.Context) {
	stats, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, stats)
}

func (h *StatsHandler) GetDashboard(c *gin.Context) {
	period := services.Period(c.Query("period"))

	stats, err := h.statsService.Dashboard(c.Request.Context(), period)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, stats)
}

func (h *StatsHandler) GetTraffic(c *gin.Context) {
	var q daysQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	points, err := h.statsService.Traffic(c.Request.Context(), q.Days)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, points)
}

func (h *StatsHandler) GetCommentActivity(c *gin.Context) {
	var q daysQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	points, err := h.statsService.CommentActivity(c.Request.Context(), q.Days)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, points)
}
