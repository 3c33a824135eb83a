package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
)

type ProjectHandler struct {
	svc       service.ProjectService
	maxUpload int64
}

func NewProjectHandler(svc service.ProjectService, maxUpload int64) *ProjectHandler {
	return &ProjectHandler{svc: svc, maxUpload: maxUpload}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(projects))
}

// Create accepts multipart form data: either an image file or an imageUrl
// string, plus a technologies field that may be JSON or comma-separated.
func (h *ProjectHandler) Create(c *gin.Context) {
	img, err := imageFromForm(c, "image", h.maxUpload)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	in := service.CreateProjectInput{
		Title:        c.PostForm("title"),
		Category:     c.PostForm("category"),
		Description:  c.PostForm("description"),
		Technologies: parseTechnologies(c.PostForm("technologies")),
		LiveURL:      c.PostForm("liveUrl"),
		GithubURL:    c.PostForm("githubUrl"),
		Featured:     c.PostForm("featured") == "true",
		Image:        img,
		ImageURL:     c.PostForm("imageUrl"),
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.OK(p))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid project id"))
		return
	}

	img, err := imageFromForm(c, "image", h.maxUpload)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	in := service.UpdateProjectInput{
		Image:    img,
		ImageURL: c.PostForm("imageUrl"),
	}
	if v, ok := c.GetPostForm("title"); ok {
		in.Title = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		in.Category = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("liveUrl"); ok {
		in.LiveURL = &v
	}
	if v, ok := c.GetPostForm("githubUrl"); ok {
		in.GithubURL = &v
	}
	if v, ok := c.GetPostForm("technologies"); ok {
		techs := parseTechnologies(v)
		in.Technologies = &techs
	}
	if v, ok := c.GetPostForm("featured"); ok {
		featured := v == "true"
		in.Featured = &featured
	}

	p, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(p))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid project id"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OKMsg("Project deleted successfully"))
}
