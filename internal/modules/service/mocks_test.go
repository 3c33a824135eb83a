package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/infra/blob"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockAdminRepo is a mock implementation of repo.AdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Create(ctx context.Context, a *model.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAdminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Save(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) ListActive(ctx context.Context, limit int) ([]model.Project, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSkillRepo is a mock implementation of repo.SkillRepo
type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, s *model.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSkillRepo) Save(ctx context.Context, s *model.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSkillRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepo) List(ctx context.Context) ([]model.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockSkillRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSiteRepo is a mock implementation of repo.SiteRepo
type MockSiteRepo struct {
	mock.Mock
}

func (m *MockSiteRepo) Create(ctx context.Context, s *model.Site) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSiteRepo) Save(ctx context.Context, s *model.Site) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSiteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Site), args.Error(1)
}

func (m *MockSiteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSiteRepo) ListActive(ctx context.Context) ([]model.Site, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Site), args.Error(1)
}

func (m *MockSiteRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingsRepo is a mock implementation of repo.SettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetOrCreate(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *MockSettingsRepo) Update(ctx context.Context, updates map[string]any) (*model.Settings, error) {
	args := m.Called(ctx, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

// MockBlobStore is a mock implementation of blob.Store
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*blob.Uploaded, error) {
	args := m.Called(ctx, folder, filename, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.Uploaded), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockBlobStore) KeyFromURL(rawURL string) (string, bool) {
	args := m.Called(rawURL)
	return args.String(0), args.Bool(1)
}

// recorderStub captures activity names synchronously.
type recorderStub struct {
	mu     sync.Mutex
	events []string
}

func (r *recorderStub) Record(activity, details string, typ model.ActivityType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, activity)
}

func (r *recorderStub) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// visitorRepoFake is an in-memory repo.VisitorRepo for the stateful
// counting tests.
type visitorRepoFake struct {
	days map[string]*model.VisitorDay
}

func newVisitorRepoFake() *visitorRepoFake {
	return &visitorRepoFake{days: make(map[string]*model.VisitorDay)}
}

func (f *visitorRepoFake) Create(ctx context.Context, v *model.VisitorDay) error {
	if _, ok := f.days[v.Date]; ok {
		return errors.New("duplicate date")
	}
	cp := *v
	f.days[v.Date] = &cp
	return nil
}

func (f *visitorRepoFake) Save(ctx context.Context, v *model.VisitorDay) error {
	cp := *v
	f.days[v.Date] = &cp
	return nil
}

func (f *visitorRepoFake) FindByDate(ctx context.Context, date string) (*model.VisitorDay, error) {
	v, ok := f.days[date]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *visitorRepoFake) ListAll(ctx context.Context) ([]model.VisitorDay, error) {
	out := make([]model.VisitorDay, 0, len(f.days))
	for _, v := range f.days {
		out = append(out, *v)
	}
	return out, nil
}

func (f *visitorRepoFake) Totals(ctx context.Context) (repo.VisitorTotals, error) {
	var t repo.VisitorTotals
	for _, v := range f.days {
		t.Total += int64(v.Count)
		t.Unique += int64(len(v.IPAddresses))
	}
	return t, nil
}
