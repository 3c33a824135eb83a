package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
)

type PortfolioHandler struct {
	svc service.PortfolioService
}

func NewPortfolioHandler(svc service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// Get serves everything the public site needs in one response.
func (h *PortfolioHandler) Get(c *gin.Context) {
	data, err := h.svc.Fetch(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(data))
}
