package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(store *sessions.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AdminAuth(store), func(c *gin.Context) {
		id := c.MustGet(CtxAdmin).(sessions.Identity)
		c.JSON(http.StatusOK, gin.H{"username": id.Username})
	})
	return r
}

func TestAdminAuthMissingToken(t *testing.T) {
	r := setupAuthRouter(sessions.NewStore(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestAdminAuthInvalidToken(t *testing.T) {
	r := setupAuthRouter(sessions.NewStore(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "deadbeefdeadbeefdeadbeefdeadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthValidToken(t *testing.T) {
	store := sessions.NewStore(time.Minute)
	r := setupAuthRouter(store)

	token, err := store.Create(sessions.Identity{AdminID: uuid.New(), Username: "admin"})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAdminAuthExpiredSession(t *testing.T) {
	store := sessions.NewStore(10 * time.Millisecond)
	r := setupAuthRouter(store)

	token, err := store.Create(sessions.Identity{AdminID: uuid.New(), Username: "admin"})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		r.ServeHTTP(w, req)
		return w.Code == http.StatusUnauthorized
	}, time.Second, 10*time.Millisecond)
}
