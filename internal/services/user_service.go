package services

import (
	"context"
	"errors"
	"strings"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/internal/repository"
	"gorm.io/gorm"
)

// UserService resolves identity-provider accounts to local profiles
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Resolve builds the current user from verified token claims. The local
// profile, found by provider id and then by email, supplies name and role;
// without a profile the account is a plain user.
func (s *UserService) Resolve(ctx context.Context, subject, email string) (*models.CurrentUser, error) {
	current := &models.CurrentUser{ID: subject, Email: strings.ToLower(email), Role: models.RoleUser}

	profile, err := s.findProfile(ctx, subject, email)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		current.Name = profile.FullName
		if profile.Role != "" {
			current.Role = profile.Role
		}
		if current.Email == "" {
			current.Email = profile.Email
		}
	}
	if current.Name == "" {
		current.Name = current.Email
	}
	return current, nil
}

func (s *UserService) findProfile(ctx context.Context, subject, email string) (*models.User, error) {
	if subject != "" {
		user, err := s.repo.FindByAuthID(ctx, subject)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if email != "" {
		user, err := s.repo.FindByEmail(ctx, email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, nil
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, error) {
	return s.repo.List(ctx, query)
}
