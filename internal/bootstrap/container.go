package bootstrap

import (
	"context"

	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/samirchaudhary/portfolio-api/internal/config"
	"github.com/samirchaudhary/portfolio-api/internal/infra/blob"
	"github.com/samirchaudhary/portfolio-api/internal/infra/db"
	"github.com/samirchaudhary/portfolio-api/internal/infra/logger"
	"github.com/samirchaudhary/portfolio-api/internal/modules/handler"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Admin{},
				&model.Project{},
				&model.Skill{},
				&model.Site{},
				&model.Message{},
				&model.VisitorDay{},
				&model.Activity{},
				&model.Settings{},
			)
		}
		return d, nil
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (blob.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// in-memory admin sessions
	do.Provide(inj, func(i *do.Injector) (*sessions.Store, error) {
		return sessions.NewStore(sessions.DefaultTTL), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.AdminRepo, error) {
		return repo.NewAdminRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SkillRepo, error) {
		return repo.NewSkillRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SiteRepo, error) {
		return repo.NewSiteRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MessageRepo, error) {
		return repo.NewMessageRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.VisitorRepo, error) {
		return repo.NewVisitorRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ActivityRepo, error) {
		return repo.NewActivityRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SettingsRepo, error) {
		return repo.NewSettingsRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// shared service pieces
	do.Provide(inj, func(i *do.Injector) (*service.AssetManager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewAssetManager(
			do.MustInvoke[blob.Store](i),
			cfg.Uploads.Dir,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.Recorder, error) {
		return service.NewRecorder(
			do.MustInvoke[repo.ActivityRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.AdminRepo](i),
			do.MustInvoke[*sessions.Store](i),
			do.MustInvoke[service.Recorder](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*service.AssetManager](i),
			do.MustInvoke[service.Recorder](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SkillService, error) {
		return service.NewSkillService(
			do.MustInvoke[repo.SkillRepo](i),
			do.MustInvoke[service.Recorder](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SiteService, error) {
		return service.NewSiteService(
			do.MustInvoke[repo.SiteRepo](i),
			do.MustInvoke[service.Recorder](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MessageService, error) {
		return service.NewMessageService(
			do.MustInvoke[repo.MessageRepo](i),
			do.MustInvoke[service.Recorder](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.VisitorService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewVisitorService(
			do.MustInvoke[repo.VisitorRepo](i),
			service.ParseVisitorMode(cfg.Visitors.Mode),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SettingsService, error) {
		return service.NewSettingsService(
			do.MustInvoke[repo.SettingsRepo](i),
			do.MustInvoke[*service.AssetManager](i),
			do.MustInvoke[service.Recorder](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PortfolioService, error) {
		return service.NewPortfolioService(
			do.MustInvoke[repo.SettingsRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.SkillRepo](i),
			do.MustInvoke[repo.SiteRepo](i),
			do.MustInvoke[repo.VisitorRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.StatsService, error) {
		return service.NewStatsService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.SkillRepo](i),
			do.MustInvoke[repo.SiteRepo](i),
			do.MustInvoke[repo.MessageRepo](i),
			do.MustInvoke[service.VisitorService](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			cfg.Uploads.MaxBytes,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SkillHandler, error) {
		return handler.NewSkillHandler(do.MustInvoke[service.SkillService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SiteHandler, error) {
		return handler.NewSiteHandler(do.MustInvoke[service.SiteService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MessageHandler, error) {
		return handler.NewMessageHandler(do.MustInvoke[service.MessageService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SettingsHandler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return handler.NewSettingsHandler(
			do.MustInvoke[service.SettingsService](i),
			cfg.Uploads.MaxBytes,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.VisitorHandler, error) {
		return handler.NewVisitorHandler(do.MustInvoke[service.VisitorService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PortfolioHandler, error) {
		return handler.NewPortfolioHandler(do.MustInvoke[service.PortfolioService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DashboardHandler, error) {
		return handler.NewDashboardHandler(do.MustInvoke[service.StatsService](i)), nil
	})

	return inj
}
