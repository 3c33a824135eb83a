package repo

import (
	"context"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"gorm.io/gorm"
)

// VisitorTotals aggregates the whole table: Total sums day counts, Unique
// sums the per-day IP-set sizes (not a cross-day union).
type VisitorTotals struct {
	Total  int64 `json:"totalVisitors"`
	Unique int64 `json:"uniqueVisitors"`
}

type VisitorRepo interface {
	Create(ctx context.Context, v *model.VisitorDay) error
	Save(ctx context.Context, v *model.VisitorDay) error
	FindByDate(ctx context.Context, date string) (*model.VisitorDay, error)
	ListAll(ctx context.Context) ([]model.VisitorDay, error)
	Totals(ctx context.Context) (VisitorTotals, error)
}

type visitorRepo struct{ db *gorm.DB }

func NewVisitorRepo(db *gorm.DB) VisitorRepo {
	return &visitorRepo{db: db}
}

func (r *visitorRepo) Create(ctx context.Context, v *model.VisitorDay) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *visitorRepo) Save(ctx context.Context, v *model.VisitorDay) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *visitorRepo) FindByDate(ctx context.Context, date string) (*model.VisitorDay, error) {
	var v model.VisitorDay
	if err := r.db.WithContext(ctx).Where("date = ?", date).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *visitorRepo) ListAll(ctx context.Context) ([]model.VisitorDay, error) {
	var days []model.VisitorDay
	return days, r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&days).Error
}

func (r *visitorRepo) Totals(ctx context.Context) (VisitorTotals, error) {
	var row struct {
		Total  int64
		Unique int64 `gorm:"column:unique_ips"`
	}
	err := r.db.WithContext(ctx).Model(&model.VisitorDay{}).
		Select("COALESCE(SUM(count), 0) AS total, COALESCE(SUM(jsonb_array_length(ip_addresses)), 0) AS unique_ips").
		Scan(&row).Error
	return VisitorTotals{Total: row.Total, Unique: row.Unique}, err
}
