package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/samirchaudhary/portfolio-api/internal/config"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"github.com/samirchaudhary/portfolio-api/internal/modules/service"
)

// EnsureDefaults makes the app usable on a fresh database: a default
// admin account and the settings singleton.
func EnsureDefaults(ctx context.Context, cfg *config.Config, admins repo.AdminRepo, settings repo.SettingsRepo, log *zap.Logger) error {
	_, err := admins.FindByUsername(ctx, cfg.Admin.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := service.HashPassword(cfg.Admin.Password)
		if err != nil {
			return err
		}
		if err := admins.Create(ctx, &model.Admin{Username: cfg.Admin.Username, Password: hash}); err != nil {
			return err
		}
		log.Sugar().Infow("created default admin account", "username", cfg.Admin.Username)
	} else if err != nil {
		return err
	}

	if _, err := settings.GetOrCreate(ctx); err != nil {
		return err
	}
	return nil
}
