package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
)

// Context keys set by AdminAuth.
const (
	CtxAdmin = "admin"
	CtxToken = "sessionToken"
)

// AdminAuth gates mutating endpoints: the Authorization header carries the
// raw session token, no bearer scheme. Missing or expired tokens answer
// 401 with no further checks (single admin role).
func AdminAuth(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.Err("Authentication required"))
			return
		}
		identity, ok := store.Validate(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.Err("Authentication required"))
			return
		}
		c.Set(CtxAdmin, identity)
		c.Set(CtxToken, token)
		c.Next()
	}
}
