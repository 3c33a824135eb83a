package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

type MessageRepo interface {
	Create(ctx context.Context, m *model.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Message, error)
	CountUnread(ctx context.Context) (int64, error)
}

type messageRepo struct{ db *gorm.DB }

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *model.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var m model.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Message{}).Error
}

func (r *messageRepo) List(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	return messages, r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error
}

func (r *messageRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&model.Message{}).
		Where("read = ?", false).Count(&n).Error
}
