package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/middleware"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminInfo struct {
	Username string `json:"username"`
}

type loginResp struct {
	Success   bool      `json:"success"`
	SessionID string    `json:"sessionId"`
	Admin     adminInfo `json:"admin"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteError(c, apperror.Validation("Username and password are required"))
		return
	}

	token, admin, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResp{
		Success:   true,
		SessionID: token,
		Admin:     adminInfo{Username: admin.Username},
	})
}

type verifyResp struct {
	Success bool              `json:"success"`
	Valid   bool              `json:"valid"`
	Admin   sessions.Identity `json:"admin"`
}

func (h *AuthHandler) Verify(c *gin.Context) {
	identity := c.MustGet(middleware.CtxAdmin).(sessions.Identity)
	c.JSON(http.StatusOK, verifyResp{Success: true, Valid: true, Admin: identity})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.svc.Logout(c.GetString(middleware.CtxToken))
	c.JSON(http.StatusOK, serializer.OKMsg("Logged out successfully"))
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid request body"))
		return
	}

	identity := c.MustGet(middleware.CtxAdmin).(sessions.Identity)
	if err := h.svc.ChangePassword(c.Request.Context(), identity.AdminID, req.CurrentPassword, req.NewPassword); err != nil {
		serializer.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.OKMsg("Password updated successfully"))
}
