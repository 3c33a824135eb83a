package service

import (
	"context"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"golang.org/x/sync/errgroup"
)

// portfolioProjectCap limits the aggregate's project list.
const portfolioProjectCap = 6

// Analytics uses the stored per-day aggregates: Unique here sums day-set
// sizes; the dashboard's cross-day union lives in VisitorStats.
type Analytics struct {
	TotalVisitors  int64 `json:"totalVisitors"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
}

type PortfolioData struct {
	Settings  *model.Settings `json:"settings"`
	Projects  []model.Project `json:"projects"`
	Skills    []model.Skill   `json:"skills"`
	Sites     []model.Site    `json:"sites"`
	Analytics Analytics       `json:"analytics"`
}

type PortfolioService interface {
	// Fetch is the composite public read. The sub-fetches run
	// concurrently; any failure fails the whole read.
	Fetch(ctx context.Context) (*PortfolioData, error)
}

type portfolioService struct {
	settings repo.SettingsRepo
	projects repo.ProjectRepo
	skills   repo.SkillRepo
	sites    repo.SiteRepo
	visitors repo.VisitorRepo
}

func NewPortfolioService(
	settings repo.SettingsRepo,
	projects repo.ProjectRepo,
	skills repo.SkillRepo,
	sites repo.SiteRepo,
	visitors repo.VisitorRepo,
) PortfolioService {
	return &portfolioService{
		settings: settings,
		projects: projects,
		skills:   skills,
		sites:    sites,
		visitors: visitors,
	}
}

func (s *portfolioService) Fetch(ctx context.Context) (*PortfolioData, error) {
	out := &PortfolioData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		settings, err := s.settings.GetOrCreate(gctx)
		out.Settings = settings
		return err
	})
	g.Go(func() error {
		projects, err := s.projects.ListActive(gctx, portfolioProjectCap)
		out.Projects = projects
		return err
	})
	g.Go(func() error {
		skills, err := s.skills.List(gctx)
		out.Skills = skills
		return err
	})
	g.Go(func() error {
		sites, err := s.sites.ListActive(gctx)
		out.Sites = sites
		return err
	})
	g.Go(func() error {
		totals, err := s.visitors.Totals(gctx)
		out.Analytics = Analytics{TotalVisitors: totals.Total, UniqueVisitors: totals.Unique}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if out.Projects == nil {
		out.Projects = []model.Project{}
	}
	if out.Skills == nil {
		out.Skills = []model.Skill{}
	}
	if out.Sites == nil {
		out.Sites = []model.Site{}
	}
	return out, nil
}
