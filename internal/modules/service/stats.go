package service

import (
	"context"

	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	TotalProjects  int64 `json:"totalProjects"`
	TotalSkills    int64 `json:"totalSkills"`
	TotalSites     int64 `json:"totalSites"`
	UnreadMessages int64 `json:"unreadMessages"`
	TotalVisitors  int   `json:"totalVisitors"`
	UniqueVisitors int   `json:"uniqueVisitors"`
	TodayVisitors  int   `json:"todayVisitors"`
}

type StatsService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	projects repo.ProjectRepo
	skills   repo.SkillRepo
	sites    repo.SiteRepo
	messages repo.MessageRepo
	visitors VisitorService
}

func NewStatsService(
	projects repo.ProjectRepo,
	skills repo.SkillRepo,
	sites repo.SiteRepo,
	messages repo.MessageRepo,
	visitors VisitorService,
) StatsService {
	return &statsService{
		projects: projects,
		skills:   skills,
		sites:    sites,
		messages: messages,
		visitors: visitors,
	}
}

func (s *statsService) Stats(ctx context.Context) (*DashboardStats, error) {
	out := &DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalProjects, err = s.projects.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		out.TotalSkills, err = s.skills.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		out.TotalSites, err = s.sites.CountActive(gctx)
		return
	})
	g.Go(func() (err error) {
		out.UnreadMessages, err = s.messages.CountUnread(gctx)
		return
	})
	g.Go(func() error {
		visits, err := s.visitors.Stats(gctx)
		if err != nil {
			return err
		}
		out.TotalVisitors = visits.Total
		out.UniqueVisitors = visits.Unique
		out.TodayVisitors = visits.Today
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
