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

type SkillService interface {
	List(ctx context.Context) ([]model.Skill, error)
	Create(ctx context.Context, in SkillInput) (*model.Skill, error)
	Update(ctx context.Context, id uuid.UUID, in SkillInput) (*model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SkillInput struct {
	Name        string
	Icon        string
	Category    string
	Description string
	Featured    bool
}

type skillService struct {
	r        repo.SkillRepo
	activity Recorder
}

func NewSkillService(r repo.SkillRepo, activity Recorder) SkillService {
	return &skillService{r: r, activity: activity}
}

func (s *skillService) List(ctx context.Context) ([]model.Skill, error) {
	return s.r.List(ctx)
}

func (s *skillService) validate(in *SkillInput) error {
	if in.Name == "" {
		return apperror.Validation("Name is required")
	}
	if len(in.Description) > 200 {
		return apperror.Validation("Description must be 200 characters or fewer")
	}
	if in.Icon == "" {
		in.Icon = model.DefaultSkillIcon
	}
	return nil
}

func (s *skillService) Create(ctx context.Context, in SkillInput) (*model.Skill, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	category, ok := model.ParseSkillCategory(in.Category)
	if !ok {
		return nil, apperror.Validation("Invalid skill category")
	}

	skill := &model.Skill{
		Name:        in.Name,
		Icon:        in.Icon,
		Category:    category,
		Description: in.Description,
		Featured:    in.Featured,
	}
	if err := s.r.Create(ctx, skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Skill with this name already exists")
		}
		return nil, err
	}

	s.activity.Record("Skill Created", fmt.Sprintf("Skill %q created", skill.Name), model.ActivitySkill)
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id uuid.UUID, in SkillInput) (*model.Skill, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	category, ok := model.ParseSkillCategory(in.Category)
	if !ok {
		return nil, apperror.Validation("Invalid skill category")
	}

	skill, err := s.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Skill")
		}
		return nil, err
	}

	skill.Name = in.Name
	skill.Icon = in.Icon
	skill.Category = category
	skill.Description = in.Description
	skill.Featured = in.Featured

	if err := s.r.Save(ctx, skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Skill with this name already exists")
		}
		return nil, err
	}

	s.activity.Record("Skill Updated", fmt.Sprintf("Skill %q updated", skill.Name), model.ActivitySkill)
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	skill, err := s.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Skill")
		}
		return err
	}

	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("Skill Deleted", fmt.Sprintf("Skill %q deleted", skill.Name), model.ActivitySkill)
	return nil
}
