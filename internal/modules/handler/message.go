package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
)

type MessageHandler struct {
	svc service.MessageService
}

func NewMessageHandler(svc service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

type messageReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Create is the public contact-form endpoint; the stored message never
// goes back to the sender.
func (h *MessageHandler) Create(c *gin.Context) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid request body"))
		return
	}

	_, err := h.svc.Create(c.Request.Context(), service.MessageInput{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Message,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.OKMsg("Message sent successfully"))
}

func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK(messages))
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		serializer.WriteError(c, apperror.Validation("Invalid message id"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serializer.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OKMsg("Message deleted successfully"))
}
