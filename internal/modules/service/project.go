package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateProjectInput struct {
	Title        string
	Category     string
	Description  string
	Technologies []string
	LiveURL      string
	GithubURL    string
	Featured     bool
	// Image and ImageURL are alternatives; one of the two is required.
	Image    *ImageUpload
	ImageURL string
}

// UpdateProjectInput replaces only the fields that are set.
type UpdateProjectInput struct {
	Title        *string
	Category     *string
	Description  *string
	Technologies *[]string
	LiveURL      *string
	GithubURL    *string
	Featured     *bool
	Image        *ImageUpload
	ImageURL     string
}

type projectService struct {
	r        repo.ProjectRepo
	assets   *AssetManager
	activity Recorder
}

func NewProjectService(r repo.ProjectRepo, assets *AssetManager, activity Recorder) ProjectService {
	return &projectService{r: r, assets: assets, activity: activity}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.r.ListActive(ctx, 0)
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if in.Title == "" {
		return nil, apperror.Validation("Title is required")
	}
	if len(in.Title) > 100 {
		return nil, apperror.Validation("Title must be 100 characters or fewer")
	}
	category, ok := model.ParseProjectCategory(in.Category)
	if !ok {
		return nil, apperror.Validation("Invalid project category")
	}
	if in.Description == "" {
		return nil, apperror.Validation("Description is required")
	}
	if len(in.Description) > 1000 {
		return nil, apperror.Validation("Description must be 1000 characters or fewer")
	}
	if err := validateOptionalURL(in.LiveURL); err != nil {
		return nil, err
	}
	if err := validateOptionalURL(in.GithubURL); err != nil {
		return nil, err
	}
	if in.Image == nil && in.ImageURL == "" {
		return nil, apperror.Validation("Image is required")
	}

	image, err := s.assets.Resolve(ctx, projectAssetFolder, in.Image, in.ImageURL, "")
	if err != nil {
		return nil, err
	}

	p := &model.Project{
		Title:        in.Title,
		Category:     category,
		Description:  in.Description,
		Image:        image,
		Technologies: datatypes.JSONSlice[string](in.Technologies),
		LiveURL:      in.LiveURL,
		GithubURL:    in.GithubURL,
		DatePosted:   time.Now().Format("2006-01-02"),
		Featured:     in.Featured,
		Status:       model.StatusActive,
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}

	s.activity.Record("Project Created", fmt.Sprintf("Project %q created", p.Title), model.ActivityProject)
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	p, err := s.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Project")
		}
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, apperror.Validation("Title is required")
		}
		if len(*in.Title) > 100 {
			return nil, apperror.Validation("Title must be 100 characters or fewer")
		}
		p.Title = *in.Title
	}
	if in.Category != nil {
		category, ok := model.ParseProjectCategory(*in.Category)
		if !ok {
			return nil, apperror.Validation("Invalid project category")
		}
		p.Category = category
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, apperror.Validation("Description is required")
		}
		if len(*in.Description) > 1000 {
			return nil, apperror.Validation("Description must be 1000 characters or fewer")
		}
		p.Description = *in.Description
	}
	if in.LiveURL != nil {
		if err := validateOptionalURL(*in.LiveURL); err != nil {
			return nil, err
		}
		p.LiveURL = *in.LiveURL
	}
	if in.GithubURL != nil {
		if err := validateOptionalURL(*in.GithubURL); err != nil {
			return nil, err
		}
		p.GithubURL = *in.GithubURL
	}
	if in.Technologies != nil {
		p.Technologies = datatypes.JSONSlice[string](*in.Technologies)
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	old := p.Image
	image, err := s.assets.Resolve(ctx, projectAssetFolder, in.Image, in.ImageURL, p.Image)
	if err != nil {
		return nil, err
	}
	p.Image = image

	if err := s.r.Save(ctx, p); err != nil {
		return nil, err
	}

	if old != "" && image != old {
		s.assets.CleanupReplaced(ctx, old)
	}

	s.activity.Record("Project Updated", fmt.Sprintf("Project %q updated", p.Title), model.ActivityProject)
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Project")
		}
		return err
	}

	s.assets.CleanupDeleted(ctx, p.Image)

	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("Project Deleted", fmt.Sprintf("Project %q deleted", p.Title), model.ActivityProject)
	return nil
}

func validateOptionalURL(v string) error {
	if v != "" && !model.ValidURL(v) {
		return apperror.Validation("Please provide a valid URL")
	}
	return nil
}
