package service

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns every registered user. The password hash never reaches
// the wire; domain.User excludes it from serialization.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
