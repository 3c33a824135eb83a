package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

type SiteRepo interface {
	Create(ctx context.Context, s *model.Site) error
	Save(ctx context.Context, s *model.Site) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Site, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]model.Site, error)
	CountActive(ctx context.Context) (int64, error)
}

type siteRepo struct{ db *gorm.DB }

func NewSiteRepo(db *gorm.DB) SiteRepo {
	return &siteRepo{db: db}
}

func (r *siteRepo) Create(ctx context.Context, s *model.Site) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *siteRepo) Save(ctx context.Context, s *model.Site) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *siteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Site, error) {
	var s model.Site
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *siteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Site{}).Error
}

func (r *siteRepo) ListActive(ctx context.Context) ([]model.Site, error) {
	var sites []model.Site
	return sites, r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("display_order ASC").
		Find(&sites).Error
}

func (r *siteRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&model.Site{}).
		Where("active = ?", true).Count(&n).Error
}
