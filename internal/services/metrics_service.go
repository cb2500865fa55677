package services

import (
	"context"

	"github.com/medcalc/backend/internal/database"
	"github.com/medcalc/backend/internal/domain"
	apperrors "github.com/medcalc/backend/internal/errors"
	"github.com/medcalc/backend/internal/repository"
)

// MetricsService handles user-reported health measurements.
type MetricsService struct {
	repo *repository.CalculatorRepository
}

// NewMetricsService creates a new metrics service
func NewMetricsService(repo *repository.CalculatorRepository) *MetricsService {
	return &MetricsService{repo: repo}
}

// AddMetric persists a caller-supplied measurement, creating the user on
// first use like the calculation path does.
func (s *MetricsService) AddMetric(ctx context.Context, input domain.HealthMetricInput) (*database.HealthMetric, error) {
	if _, err := s.repo.GetOrCreateUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	return s.repo.CreateHealthMetric(ctx, &database.HealthMetric{
		UserID:     input.UserID,
		MetricType: input.MetricType,
		Value:      input.Value,
		Unit:       input.Unit,
		Notes:      input.Notes,
	})
}

// GetUserMetrics returns the user's metrics, newest first
func (s *MetricsService) GetUserMetrics(ctx context.Context, userID, metricType string, limit int) ([]database.HealthMetric, error) {
	return s.repo.ListUserMetrics(ctx, userID, metricType, limit)
}

// DeleteMetric deletes one metric with the same existence-then-ownership
// check order as calculation deletes.
func (s *MetricsService) DeleteMetric(ctx context.Context, userID string, id uint) error {
	metric, err := s.repo.GetHealthMetric(ctx, id)
	if err != nil {
		return err
	}

	if metric.UserID != userID {
		return apperrors.ErrForbidden.WithContext("metric_id", id)
	}

	return s.repo.DeleteHealthMetric(ctx, id)
}
