package controllers

import (
	"net/http"

	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/response"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// Dashboard handles GET /api/stats (admin only).
func (c *StatsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Dashboard()
	if err != nil {
		logger.WithCtx(r.Context()).Error("stats failed", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, stats)
}
