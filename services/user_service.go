package services

import (
	"context"
	"fmt"

	"newsportal/models"
	"newsportal/repositories"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	UpdateRole(ctx context.Context, id uint, role models.UserRole) (*models.User, error)
	// Delete removes a user other than the acting one.
	Delete(ctx context.Context, id, actingUserID uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateRole(ctx context.Context, id uint, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, models.NewValidationError("role must be one of USER, EDITOR, ADMIN")
	}
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id, actingUserID uint) error {
	if id == actingUserID {
		return models.NewValidationError("you cannot delete your own account")
	}
	return s.userRepo.Delete(ctx, id)
}
