package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/apperror"
	"github.com/samirchaudhary/portfolio-api/internal/pkg/sessions"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// HashPassword hashes a plaintext admin password for storage.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type AuthService interface {
	// Login verifies credentials and opens a session. The failure message
	// is identical for unknown usernames and wrong passwords.
	Login(ctx context.Context, username, password string) (token string, admin *model.Admin, err error)
	Logout(token string)
	ChangePassword(ctx context.Context, adminID uuid.UUID, currentPassword, newPassword string) error
}

type authService struct {
	admins   repo.AdminRepo
	sessions *sessions.Store
	activity Recorder
}

func NewAuthService(admins repo.AdminRepo, store *sessions.Store, activity Recorder) AuthService {
	return &authService{admins: admins, sessions: store, activity: activity}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperror.Auth("Invalid credentials")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", nil, apperror.Auth("Invalid credentials")
	}

	token, err := s.sessions.Create(sessions.Identity{AdminID: admin.ID, Username: admin.Username})
	if err != nil {
		return "", nil, err
	}

	s.activity.Record("Admin Login", fmt.Sprintf("Admin %s logged in", admin.Username), model.ActivityLogin)
	return token, admin, nil
}

func (s *authService) Logout(token string) {
	s.sessions.Destroy(token)
}

func (s *authService) ChangePassword(ctx context.Context, adminID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < model.MinPasswordLen {
		return apperror.Validation("Password must be at least 6 characters long")
	}

	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Admin")
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(currentPassword)) != nil {
		return apperror.Validation("Current password is incorrect")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.admins.UpdatePassword(ctx, admin.ID, hash); err != nil {
		return err
	}

	s.activity.Record("Password Changed", "Admin password updated", model.ActivitySettings)
	return nil
}
