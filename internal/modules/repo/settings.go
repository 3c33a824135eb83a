package repo

import (
	"context"
	"errors"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

type SettingsRepo interface {
	// GetOrCreate returns the singleton row, inserting defaults when the
	// table is empty. Concurrent first reads still end up with one row.
	GetOrCreate(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, updates map[string]any) (*model.Settings, error)
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepo(db *gorm.DB) SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetOrCreate(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at ASC").First(&s).Error; err == nil {
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		s = *model.DefaultSettings()
		if err := tx.Create(&s).Error; err != nil {
			// another request created the row first
			return tx.Order("created_at ASC").First(&s).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Update(ctx context.Context, updates map[string]any) (*model.Settings, error) {
	s, err := r.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(s).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	var out model.Settings
	if err := r.db.WithContext(ctx).Where("id = ?", s.ID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
