package serializer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger wires the package logger used for internal-error detail.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the JSON envelope every endpoint speaks: a success flag plus
// either data/message or an error string.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func OKMsg(message string) Response {
	return Response{Success: true, Message: message}
}

func Err(message string) Response {
	return Response{Success: false, Error: message}
}

// WriteError maps a service error onto the HTTP status + envelope.
// Unknown errors become a generic 500; the detail only goes to the logs.
func WriteError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrAuth):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			// duplicate unique fields answer 400 with a specific message
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUpload):
			status = http.StatusInternalServerError
		}
		c.JSON(status, Err(appErr.Message))
		return
	}

	log.Sugar().Errorw("internal error",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"err", err,
	)
	c.JSON(http.StatusInternalServerError, Err("Internal server error"))
}
