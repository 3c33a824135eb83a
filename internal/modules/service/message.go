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

type MessageService interface {
	// Create is the public contact-form submission.
	Create(ctx context.Context, in MessageInput) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageInput struct {
	Name      string
	Email     string
	Subject   string
	Body      string
	IPAddress string
}

type messageService struct {
	r        repo.MessageRepo
	activity Recorder
}

func NewMessageService(r repo.MessageRepo, activity Recorder) MessageService {
	return &messageService{r: r, activity: activity}
}

func (s *messageService) Create(ctx context.Context, in MessageInput) (*model.Message, error) {
	switch {
	case in.Name == "":
		return nil, apperror.Validation("Name is required")
	case len(in.Name) > 50:
		return nil, apperror.Validation("Name must be 50 characters or fewer")
	case !model.ValidEmail(in.Email):
		return nil, apperror.Validation("Please provide a valid email")
	case in.Subject == "":
		return nil, apperror.Validation("Subject is required")
	case len(in.Subject) > 100:
		return nil, apperror.Validation("Subject must be 100 characters or fewer")
	case in.Body == "":
		return nil, apperror.Validation("Message is required")
	case len(in.Body) > 1000:
		return nil, apperror.Validation("Message must be 1000 characters or fewer")
	}

	m := &model.Message{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Body:      in.Body,
		IPAddress: in.IPAddress,
	}
	if err := s.r.Create(ctx, m); err != nil {
		return nil, err
	}

	s.activity.Record("New Message", fmt.Sprintf("Message from %s", m.Name), model.ActivityMessage)
	return m, nil
}

func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	return s.r.List(ctx)
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Message")
		}
		return err
	}

	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record("Message Deleted", fmt.Sprintf("Message from %s deleted", m.Name), model.ActivityMessage)
	return nil
}
