package service

import (
	"context"
	"testing"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFetchPortfolioData(t *testing.T) {
	settings := new(MockSettingsRepo)
	projects := new(MockProjectRepo)
	skills := new(MockSkillRepo)
	sites := new(MockSiteRepo)
	visitors := newVisitorRepoFake()
	visitors.days["2026-08-27"] = &model.VisitorDay{
		Date:        "2026-08-27",
		Count:       4,
		IPAddresses: []string{"1.1.1.1", "2.2.2.2"},
	}

	settings.On("GetOrCreate", mock.Anything).Return(model.DefaultSettings(), nil)
	projects.On("ListActive", mock.Anything, 6).Return([]model.Project{{Title: "Portfolio Site"}}, nil)
	skills.On("List", mock.Anything).Return([]model.Skill{{Name: "Go"}}, nil)
	sites.On("ListActive", mock.Anything).Return([]model.Site(nil), nil)

	svc := NewPortfolioService(settings, projects, skills, sites, visitors)
	data, err := svc.Fetch(context.Background())
	assert.NoError(t, err)

	assert.NotNil(t, data.Settings)
	assert.Len(t, data.Projects, 1)
	assert.Len(t, data.Skills, 1)
	// a nil slice from the repo still serializes as [], not null
	assert.NotNil(t, data.Sites)
	assert.Empty(t, data.Sites)
	assert.Equal(t, int64(4), data.Analytics.TotalVisitors)
	assert.Equal(t, int64(2), data.Analytics.UniqueVisitors)

	// the public read caps the project list
	projects.AssertCalled(t, "ListActive", mock.Anything, 6)
}

func TestFetchPortfolioDataPropagatesFailure(t *testing.T) {
	settings := new(MockSettingsRepo)
	projects := new(MockProjectRepo)
	skills := new(MockSkillRepo)
	sites := new(MockSiteRepo)

	settings.On("GetOrCreate", mock.Anything).Return(model.DefaultSettings(), nil)
	projects.On("ListActive", mock.Anything, 6).Return(nil, assert.AnError)
	skills.On("List", mock.Anything).Return([]model.Skill{}, nil)
	sites.On("ListActive", mock.Anything).Return([]model.Site{}, nil)

	svc := NewPortfolioService(settings, projects, skills, sites, newVisitorRepoFake())
	_, err := svc.Fetch(context.Background())
	assert.Error(t, err)
}

func TestDashboardStats(t *testing.T) {
	projects := new(MockProjectRepo)
	skills := new(MockSkillRepo)
	sites := new(MockSiteRepo)
	messages := new(MockMessageRepo)
	visitors := newVisitorRepoFake()
	visitors.days["2026-08-26"] = &model.VisitorDay{
		Date:        "2026-08-26",
		Count:       3,
		IPAddresses: []string{"1.1.1.1"},
	}

	projects.On("Count", mock.Anything).Return(int64(5), nil)
	skills.On("Count", mock.Anything).Return(int64(8), nil)
	sites.On("CountActive", mock.Anything).Return(int64(2), nil)
	messages.On("CountUnread", mock.Anything).Return(int64(1), nil)

	svc := NewStatsService(projects, skills, sites, messages, NewVisitorService(visitors, VisitorsUnique))
	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalProjects)
	assert.Equal(t, int64(8), stats.TotalSkills)
	assert.Equal(t, int64(2), stats.TotalSites)
	assert.Equal(t, int64(1), stats.UnreadMessages)
	assert.Equal(t, 3, stats.TotalVisitors)
	assert.Equal(t, 1, stats.UniqueVisitors)
	assert.Equal(t, 0, stats.TodayVisitors)
}
