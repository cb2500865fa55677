package services

import (
	"context"

	"github.com/medcalc/backend/internal/database"
	"github.com/medcalc/backend/internal/repository"
)

// UserService handles explicit user lifecycle operations. Creation stays
// implicit: users come into existence on their first submission.
type UserService struct {
	repo *repository.CalculatorRepository
}

// NewUserService creates a new user service
func NewUserService(repo *repository.CalculatorRepository) *UserService {
	return &UserService{repo: repo}
}

// GetUser gets a user by its caller-supplied ID
func (s *UserService) GetUser(ctx context.Context, userID string) (*database.User, error) {
	return s.repo.GetUser(ctx, userID)
}

// UpdateUser applies a partial update to the user's profile fields
func (s *UserService) UpdateUser(ctx context.Context, userID string, update repository.UserUpdate) (*database.User, error) {
	return s.repo.UpdateUser(ctx, userID, update)
}

// DeleteUser deletes the user and everything it owns
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.repo.DeleteUser(ctx, userID)
}
