package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/samirchaudhary/portfolio-api/internal/bootstrap"
	"github.com/samirchaudhary/portfolio-api/internal/config"
	"github.com/samirchaudhary/portfolio-api/internal/modules/handler"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
	"github.com/samirchaudhary/portfolio-api/internal/router"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	// local fallback storage for images
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Sugar().Fatalw("create uploads dir", "err", err)
	}

	// seed default admin and settings
	admins := do.MustInvoke[repo.AdminRepo](inj)
	settings := do.MustInvoke[repo.SettingsRepo](inj)
	if err := bootstrap.EnsureDefaults(context.Background(), cfg, admins, settings, log); err != nil {
		log.Sugar().Fatalw("seed defaults", "err", err)
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		Sessions:         do.MustInvoke[*sessions.Store](inj),
		AuthHandler:      do.MustInvoke[*handler.AuthHandler](inj),
		PortfolioHandler: do.MustInvoke[*handler.PortfolioHandler](inj),
		ProjectHandler:   do.MustInvoke[*handler.ProjectHandler](inj),
		SkillHandler:     do.MustInvoke[*handler.SkillHandler](inj),
		SiteHandler:      do.MustInvoke[*handler.SiteHandler](inj),
		MessageHandler:   do.MustInvoke[*handler.MessageHandler](inj),
		SettingsHandler:  do.MustInvoke[*handler.SettingsHandler](inj),
		VisitorHandler:   do.MustInvoke[*handler.VisitorHandler](inj),
		DashboardHandler: do.MustInvoke[*handler.DashboardHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
