package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
)

type VisitorHandler struct {
	svc service.VisitorService
}

func NewVisitorHandler(svc service.VisitorService) *VisitorHandler {
	return &VisitorHandler{svc: svc}
}

type trackResp struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

func (h *VisitorHandler) Track(c *gin.Context) {
	count, err := h.svc.Track(c.Request.Context(), c.ClientIP())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, trackResp{
		Success: true,
		Count:   count,
		Message: "Visitor tracked successfully",
	})
}
