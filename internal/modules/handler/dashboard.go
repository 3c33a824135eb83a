package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
)

type DashboardHandler struct {
	svc service.StatsService
}

func NewDashboardHandler(svc service.StatsService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(stats))
}
