package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samirchaudhary/portfolio-api/internal/config"
	"github.com/samirchaudhary/portfolio-api/internal/middleware"
	"github.com/samirchaudhary/portfolio-api/internal/modules/handler"
	"github.com/samirchaudhary/portfolio-api/internal/modules/serializer"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	Sessions         *sessions.Store
	AuthHandler      *handler.AuthHandler
	PortfolioHandler *handler.PortfolioHandler
	ProjectHandler   *handler.ProjectHandler
	SkillHandler     *handler.SkillHandler
	SiteHandler      *handler.SiteHandler
	MessageHandler   *handler.MessageHandler
	SettingsHandler  *handler.SettingsHandler
	VisitorHandler   *handler.VisitorHandler
	DashboardHandler *handler.DashboardHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// locally stored images
	r.Static("/uploads", d.Config.Uploads.Dir)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"message":   "Server is running",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		})

		// public
		api.GET("/portfolio-data", d.PortfolioHandler.Get)
		api.POST("/visitors/track", d.VisitorHandler.Track)
		api.POST("/messages", d.MessageHandler.Create)

		gate := middleware.AdminAuth(d.Sessions)

		admin := api.Group("/admin")
		{
			admin.POST("/login", d.AuthHandler.Login)
			admin.GET("/verify", gate, d.AuthHandler.Verify)
			admin.POST("/logout", gate, d.AuthHandler.Logout)
			admin.PUT("/change-password", gate, d.AuthHandler.ChangePassword)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.List)
			projects.POST("", gate, d.ProjectHandler.Create)
			projects.PUT("/:id", gate, d.ProjectHandler.Update)
			projects.DELETE("/:id", gate, d.ProjectHandler.Delete)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", d.SkillHandler.List)
			skills.POST("", gate, d.SkillHandler.Create)
			skills.PUT("/:id", gate, d.SkillHandler.Update)
			skills.DELETE("/:id", gate, d.SkillHandler.Delete)
		}

		sites := api.Group("/sites")
		{
			sites.GET("", d.SiteHandler.List)
			sites.POST("", gate, d.SiteHandler.Create)
			sites.PUT("/:id", gate, d.SiteHandler.Update)
			sites.DELETE("/:id", gate, d.SiteHandler.Delete)
		}

		api.GET("/messages", gate, d.MessageHandler.List)
		api.DELETE("/messages/:id", gate, d.MessageHandler.Delete)

		api.GET("/settings", d.SettingsHandler.Get)
		api.PUT("/settings", gate, d.SettingsHandler.Update)

		api.GET("/dashboard/stats", gate, d.DashboardHandler.Stats)
	}

	// anything outside /api falls through to the static frontend; unknown
	// paths get index.html so client-side routing works
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, serializer.Err("API endpoint not found"))
			return
		}
		serveStatic(c, d.Config.Static.Dir)
	})

	return r
}

func serveStatic(c *gin.Context, dir string) {
	requested := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}
	c.File(filepath.Join(dir, "index.html"))
}
