package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
)

type SettingsHandler struct {
	svc       service.SettingsService
	maxUpload int64
}

func NewSettingsHandler(svc service.SettingsService, maxUpload int64) *SettingsHandler {
	return &SettingsHandler{svc: svc, maxUpload: maxUpload}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(settings))
}

// Update accepts multipart form data so the about image can ride along
// with the text fields. Unknown fields are ignored by the service.
func (h *SettingsHandler) Update(c *gin.Context) {
	img, err := imageFromForm(c, "aboutImage", h.maxUpload)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	in := service.UpdateSettingsInput{
		Fields:     map[string]string{},
		AboutImage: img,
	}

	if form, err := c.MultipartForm(); err == nil {
		for key, vals := range form.Value {
			if len(vals) == 0 {
				continue
			}
			if key == "socialLinks" {
				var links model.SocialLinks
				// a malformed payload just leaves the links untouched
				if err := json.Unmarshal([]byte(vals[0]), &links); err == nil {
					in.SocialLinks = &links
				}
				continue
			}
			in.Fields[key] = vals[0]
		}
	}

	settings, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(settings))
}
