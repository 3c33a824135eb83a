package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

type AdminRepo interface {
	Create(ctx context.Context, a *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepo(db *gorm.DB) AdminRepo {
	return &adminRepo{db: db}
}

func (r *adminRepo) Create(ctx context.Context, a *model.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).Where("id = ?", id).
		Update("password", hash).Error
}
