package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

type SkillRepo interface {
	Create(ctx context.Context, s *model.Skill) error
	Save(ctx context.Context, s *model.Skill) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Skill, error)
	Count(ctx context.Context) (int64, error)
}

type skillRepo struct{ db *gorm.DB }

func NewSkillRepo(db *gorm.DB) SkillRepo {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, s *model.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *skillRepo) Save(ctx context.Context, s *model.Skill) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *skillRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	var s model.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Skill{}).Error
}

func (r *skillRepo) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	return skills, r.db.WithContext(ctx).
		Order("featured DESC, created_at DESC").
		Find(&skills).Error
}

func (r *skillRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&model.Skill{}).Count(&n).Error
}
