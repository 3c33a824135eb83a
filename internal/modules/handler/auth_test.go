package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/middleware"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.Admin), args.Error(2)
}

func (m *MockAuthService) Logout(token string) {
	m.Called(token)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, adminID uuid.UUID, currentPassword, newPassword string) error {
	args := m.Called(ctx, adminID, currentPassword, newPassword)
	return args.Error(0)
}

func setupAuthRouter(svc *MockAuthService, store *sessions.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/api/admin/login", h.Login)
	gate := middleware.AdminAuth(store)
	r.GET("/api/admin/verify", gate, h.Verify)
	r.POST("/api/admin/logout", gate, h.Logout)
	return r
}

func TestLoginResponseShape(t *testing.T) {
	svc := new(MockAuthService)
	r := setupAuthRouter(svc, sessions.NewStore(time.Minute))

	admin := &model.Admin{ID: uuid.New(), Username: "admin"}
	svc.On("Login", mock.Anything, "admin", "password123").Return("a1b2c3", admin, nil)

	body := `{"username":"admin","password":"password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "a1b2c3", resp["sessionId"])
	assert.Equal(t, "admin", resp["admin"].(map[string]any)["username"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := new(MockAuthService)
	r := setupAuthRouter(svc, sessions.NewStore(time.Minute))

	svc.On("Login", mock.Anything, "admin", "wrong").Return("", nil, apperror.Auth("Invalid credentials"))

	body := `{"username":"admin","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestVerifySession(t *testing.T) {
	store := sessions.NewStore(time.Minute)
	r := setupAuthRouter(new(MockAuthService), store)

	id := sessions.Identity{AdminID: uuid.New(), Username: "admin"}
	token, err := store.Create(id)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp verifyResp
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Valid)
	assert.Equal(t, id, resp.Admin)
}

func TestLogout(t *testing.T) {
	store := sessions.NewStore(time.Minute)
	svc := new(MockAuthService)
	r := setupAuthRouter(svc, store)

	token, err := store.Create(sessions.Identity{AdminID: uuid.New(), Username: "admin"})
	assert.NoError(t, err)
	svc.On("Logout", token).Return()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
	svc.AssertExpectations(t)
}
