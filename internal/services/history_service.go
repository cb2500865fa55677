package services

import (
	"context"

	"github.com/medcalc/backend/internal/database"
	apperrors "github.com/medcalc/backend/internal/errors"
	"github.com/medcalc/backend/internal/repository"
)

// HistoryService is the read side over stored calculations, plus deletes
// guarded by an ownership check.
type HistoryService struct {
	repo *repository.CalculatorRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(repo *repository.CalculatorRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// GetHistory returns a page of the user's calculations, newest first. The
// returned total reflects the active calc_type filter.
func (s *HistoryService) GetHistory(ctx context.Context, userID string, limit, offset int, calcType string) ([]database.Calculation, int64, error) {
	return s.repo.ListUserCalculations(ctx, userID, limit, offset, calcType)
}

// GetStats returns per-type aggregate statistics of the user's calculations
func (s *HistoryService) GetStats(ctx context.Context, userID string) (*repository.CalculationStats, error) {
	return s.repo.GetCalculationStats(ctx, userID)
}

// UpdateInterpretation amends the interpretation of a stored calculation
func (s *HistoryService) UpdateInterpretation(ctx context.Context, id uint, interpretation string) (*database.Calculation, error) {
	return s.repo.UpdateCalculationInterpretation(ctx, id, interpretation)
}

// DeleteCalculation deletes one calculation. Existence is checked before
// ownership: a missing id is NotFound, a foreign owner is Forbidden.
func (s *HistoryService) DeleteCalculation(ctx context.Context, userID string, id uint) error {
	calc, err := s.repo.GetCalculation(ctx, id)
	if err != nil {
		return err
	}

	if calc.UserID != userID {
		return apperrors.ErrForbidden.WithContext("calculation_id", id)
	}

	return s.repo.DeleteCalculation(ctx, id)
}

// DeleteUserCalculations deletes all of the user's calculations, optionally
// filtered by type, returning the deleted count.
func (s *HistoryService) DeleteUserCalculations(ctx context.Context, userID, calcType string) (int64, error) {
	return s.repo.DeleteUserCalculations(ctx, userID, calcType)
}
