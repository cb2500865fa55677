package domain

import (
	"context"
	"time"

	"github.com/medcalc/backend/internal/database"
	"github.com/medcalc/backend/internal/repository"
)

// CalculationService runs a formula, persists the result against the user's
// history and returns the stored record. Users are created lazily on the
// first submission.
type CalculationService interface {
	SubmitBMI(ctx context.Context, input BMIInput) (*database.Calculation, error)
	SubmitCalories(ctx context.Context, input CaloriesInput) (*database.Calculation, error)
	SubmitBloodPressure(ctx context.Context, input BloodPressureInput) (*database.Calculation, error)
}

// HistoryService is the read side over stored calculations
type HistoryService interface {
	GetHistory(ctx context.Context, userID string, limit, offset int, calcType string) ([]database.Calculation, int64, error)
	GetStats(ctx context.Context, userID string) (*repository.CalculationStats, error)
	UpdateInterpretation(ctx context.Context, id uint, interpretation string) (*database.Calculation, error)
	DeleteCalculation(ctx context.Context, userID string, id uint) error
	DeleteUserCalculations(ctx context.Context, userID, calcType string) (int64, error)
}

// UserService handles explicit user lifecycle operations
type UserService interface {
	GetUser(ctx context.Context, userID string) (*database.User, error)
	UpdateUser(ctx context.Context, userID string, update repository.UserUpdate) (*database.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// MetricsService handles user-reported health measurements
type MetricsService interface {
	AddMetric(ctx context.Context, input HealthMetricInput) (*database.HealthMetric, error)
	GetUserMetrics(ctx context.Context, userID, metricType string, limit int) ([]database.HealthMetric, error)
	DeleteMetric(ctx context.Context, userID string, id uint) error
}

// ActivityCaloriesProvider supplies exercise calorie-burn reference data from
// an external capability. Implementations return an empty slice on any
// failure; errors never propagate.
type ActivityCaloriesProvider interface {
	GetCaloriesBurned(ctx context.Context, activity string, weightKg float64, durationMinutes int) []ActivityCalories
}

// ActivityCatalog lists the activity names the external provider understands.
// Like the provider, it degrades to an empty result on failure.
type ActivityCatalog interface {
	GetSupportedActivities(ctx context.Context) []string
}

// Cache is an optional TTL cache for external API responses
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}
