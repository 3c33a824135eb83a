package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
)

type SkillHandler struct {
	svc service.SkillService
}

func NewSkillHandler(svc service.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

type skillReq struct {
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Featured    looseBool `json:"featured"`
}

func (r skillReq) input() service.SkillInput {
	return service.SkillInput{
		Name:        r.Name,
		Icon:        r.Icon,
		Category:    r.Category,
		Description: r.Description,
		Featured:    bool(r.Featured),
	}
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(skills))
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req skillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid request body"))
		return
	}

	skill, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.OK(skill))
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid skill id"))
		return
	}

	var req skillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid request body"))
		return
	}

	skill, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(skill))
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid skill id"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OKMsg("Skill deleted successfully"))
}
