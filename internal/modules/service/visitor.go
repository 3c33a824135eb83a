package service

import (
	"context"
	"errors"
	"time"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VisitorMode string

const (
	// VisitorsUnique counts an IP once per day.
	VisitorsUnique VisitorMode = "unique"
	// VisitorsEvery counts every tracking call; the IP set still dedups.
	VisitorsEvery VisitorMode = "every"
)

// ParseVisitorMode falls back to unique counting for unknown values.
func ParseVisitorMode(s string) VisitorMode {
	if VisitorMode(s) == VisitorsEvery {
		return VisitorsEvery
	}
	return VisitorsUnique
}

// VisitorStats is the dashboard aggregate. Unique is the size of the
// union of all days' IP sets, recomputed per call.
type VisitorStats struct {
	Total  int `json:"totalVisitors"`
	Unique int `json:"uniqueVisitors"`
	Today  int `json:"todayVisitors"`
}

type VisitorService interface {
	// Track records one visit and returns today's running count.
	Track(ctx context.Context, ip string) (int, error)
	Stats(ctx context.Context) (VisitorStats, error)
}

type visitorService struct {
	r    repo.VisitorRepo
	mode VisitorMode
	now  func() time.Time
}

func NewVisitorService(r repo.VisitorRepo, mode VisitorMode) VisitorService {
	return &visitorService{r: r, mode: mode, now: time.Now}
}

func (s *visitorService) Track(ctx context.Context, ip string) (int, error) {
	day := model.DayKey(s.now())

	v, err := s.r.FindByDate(ctx, day)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		// first hit of the day
		v = &model.VisitorDay{Date: day, Count: 1}
		if ip != "" {
			v.IPAddresses = datatypes.JSONSlice[string]{ip}
		}
		if err := s.r.Create(ctx, v); err != nil {
			return 0, err
		}
		return v.Count, nil
	}

	switch s.mode {
	case VisitorsEvery:
		v.Count++
		if ip != "" && !v.HasIP(ip) {
			v.IPAddresses = append(v.IPAddresses, ip)
		}
		if err := s.r.Save(ctx, v); err != nil {
			return 0, err
		}
	default:
		if ip == "" || v.HasIP(ip) {
			return v.Count, nil
		}
		v.IPAddresses = append(v.IPAddresses, ip)
		v.Count++
		if err := s.r.Save(ctx, v); err != nil {
			return 0, err
		}
	}
	return v.Count, nil
}

func (s *visitorService) Stats(ctx context.Context) (VisitorStats, error) {
	days, err := s.r.ListAll(ctx)
	if err != nil {
		return VisitorStats{}, err
	}

	today := model.DayKey(s.now())
	var stats VisitorStats
	union := make(map[string]struct{})
	for _, d := range days {
		stats.Total += d.Count
		for _, ip := range d.IPAddresses {
			union[ip] = struct{}{}
		}
		if d.Date == today {
			stats.Today = d.Count
		}
	}
	stats.Unique = len(union)
	return stats, nil
}
