package repo

import (
	"context"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

type ActivityRepo interface {
	Create(ctx context.Context, a *model.Activity) error
}

type activityRepo struct{ db *gorm.DB }

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, a *model.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}
