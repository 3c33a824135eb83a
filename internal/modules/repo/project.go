package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	Save(ctx context.Context, p *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListActive returns active projects featured-first then newest-first.
	// limit <= 0 means no cap.
	ListActive(ctx context.Context, limit int) ([]model.Project, error)
	Count(ctx context.Context) (int64, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) Save(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *projectRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{}).Error
}

func (r *projectRepo) ListActive(ctx context.Context, limit int) ([]model.Project, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", model.StatusActive).
		Order("featured DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var projects []model.Project
	return projects, q.Find(&projects).Error
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&model.Project{}).Count(&n).Error
}
