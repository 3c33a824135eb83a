package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"gorm.io/gorm"
)

type SiteService interface {
	List(ctx context.Context) ([]model.Site, error)
	Create(ctx context.Context, in SiteInput) (*model.Site, error)
	Update(ctx context.Context, id uuid.UUID, in SiteInput) (*model.Site, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SiteInput struct {
	Name         string
	URL          string
	Icon         string
	Description  string
	Category     string
	DisplayOrder int
	Active       bool
}

type siteService struct {
	r        repo.SiteRepo
	activity Recorder
}

func NewSiteService(r repo.SiteRepo, activity Recorder) SiteService {
	return &siteService{r: r, activity: activity}
}

func (s *siteService) List(ctx context.Context) ([]model.Site, error) {
	return s.r.ListActive(ctx)
}

func (s *siteService) validate(in *SiteInput) (model.SiteCategory, error) {
	if in.Name == "" {
		return "", apperror.Validation("Name is required")
	}
	if in.URL == "" || !model.ValidURL(in.URL) {
		return "", apperror.Validation("Please provide a valid URL")
	}
	if len(in.Description) > 200 {
		return "", apperror.Validation("Description must be 200 characters or fewer")
	}
	if in.Icon == "" {
		in.Icon = model.DefaultSiteIcon
	}
	category, ok := model.ParseSiteCategory(in.Category)
	if !ok {
		return "", apperror.Validation("Invalid site category")
	}
	return category, nil
}

func (s *siteService) Create(ctx context.Context, in SiteInput) (*model.Site, error) {
	category, err := s.validate(&in)
	if err != nil {
		return nil, err
	}

	site := &model.Site{
		Name:         in.Name,
		URL:          in.URL,
		Icon:         in.Icon,
		Description:  in.Description,
		Category:     category,
		DisplayOrder: in.DisplayOrder,
		Active:       in.Active,
	}
	if err := s.r.Create(ctx, site); err != nil {
		return nil, err
	}

	s.activity.Record("Site Created", fmt.Sprintf("Site %q created", site.Name), model.ActivitySite)
	return site, nil
}

func (s *siteService) Update(ctx context.Context, id uuid.UUID, in SiteInput) (*model.Site, error) {
	category, err := s.validate(&in)
	if err != nil {
		return nil, err
	}

	site, err := s.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Site")
		}
		return nil, err
	}

	site.Name = in.Name
	site.URL = in.URL
	site.Icon = in.Icon
	site.Description = in.Description
	site.Category = category
	site.DisplayOrder = in.DisplayOrder
	site.Active = in.Active

	if err := s.r.Save(ctx, site); err != nil {
		return nil, err
	}

	s.activity.Record("Site Updated", fmt.Sprintf("Site %q updated", site.Name), model.ActivitySite)
	return site, nil
}

func (s *siteService) Delete(ctx context.Context, id uuid.UUID) error {
	site, err := s.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Site")
		}
		return err
	}

	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("Site Deleted", fmt.Sprintf("Site %q deleted", site.Name), model.ActivitySite)
	return nil
}
