package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
)

type SiteHandler struct {
	svc service.SiteService
}

func NewSiteHandler(svc service.SiteService) *SiteHandler {
	return &SiteHandler{svc: svc}
}

type siteReq struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// displayOrder tolerates numeric strings; a bad value becomes 0.
	DisplayOrder looseInt `json:"displayOrder"`
	// active defaults true when absent and is false only for the literal
	// string "false" or boolean false.
	Active *looseActive `json:"active"`
}

func (r siteReq) input() service.SiteInput {
	active := true
	if r.Active != nil {
		active = bool(*r.Active)
	}
	return service.SiteInput{
		Name:         r.Name,
		URL:          r.URL,
		Icon:         r.Icon,
		Description:  r.Description,
		Category:     r.Category,
		DisplayOrder: int(r.DisplayOrder),
		Active:       active,
	}
}

func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(sites))
}

func (h *SiteHandler) Create(c *gin.Context) {
	var req siteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid request body"))
		return
	}

	site, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.OK(site))
}

func (h *SiteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid site id"))
		return
	}

	var req siteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid request body"))
		return
	}

	site, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(site))
}

func (h *SiteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid site id"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OKMsg("Site deleted successfully"))
}
