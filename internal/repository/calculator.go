package repository

import (
	"context"
	"errors"
	"math"

	"github.com/medcalc/backend/internal/database"
	apperrors "github.com/medcalc/backend/internal/errors"
	"github.com/medcalc/backend/internal/logger"
	"gorm.io/gorm"
)

// CalculatorRepository owns the mapping between user IDs and their
// calculation and metric history.
type CalculatorRepository struct {
	db *gorm.DB
}

// NewCalculatorRepository creates a new calculator repository
func NewCalculatorRepository(db *gorm.DB) *CalculatorRepository {
	return &CalculatorRepository{db: db}
}

// UserUpdate carries the optional fields of a partial user update.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	IsActive  *bool
}

// TypeStats aggregates the calculations of one type.
type TypeStats struct {
	Count int64   `json:"count"`
	Avg   float64 `json:"avg"`
}

// CalculationStats groups a user's calculations by type.
type CalculationStats struct {
	Total  int64                `json:"total"`
	ByType map[string]TypeStats `json:"by_type"`
}

// GetOrCreateUser returns the existing user or creates one with defaults.
// A uniqueness violation on a concurrent create surfaces as a conflict.
func (r *CalculatorRepository) GetOrCreateUser(ctx context.Context, userID string) (*database.User, error) {
	var user database.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewDatabaseError(err)
	}

	user = database.User{UserID: userID, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserConflict.WithContext("user_id", userID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	logger.Infof("Created new user: %s", userID)
	return &user, nil
}

// GetUser gets a user by its caller-supplied ID
func (r *CalculatorRepository) GetUser(ctx context.Context, userID string) (*database.User, error) {
	var user database.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound.WithContext("user_id", userID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &user, nil
}

// UpdateUser applies a partial update: only the supplied fields change.
func (r *CalculatorRepository) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*database.User, error) {
	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}
	if len(fields) == 0 {
		return user, nil
	}

	if err := r.db.WithContext(ctx).Model(user).Updates(fields).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	logger.Infof("Updated user: %s", userID)
	return user, nil
}

// DeleteUser deletes a user together with its calculations and metrics.
func (r *CalculatorRepository) DeleteUser(ctx context.Context, userID string) error {
	if _, err := r.GetUser(ctx, userID); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&database.Calculation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&database.HealthMetric{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&database.User{}).Error
	})
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}

	logger.Infof("Deleted user: %s", userID)
	return nil
}

// CreateCalculation persists a calculation, assigning id and timestamp
func (r *CalculatorRepository) CreateCalculation(ctx context.Context, calc *database.Calculation) (*database.Calculation, error) {
	if err := r.db.WithContext(ctx).Create(calc).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	logger.Infof("Created %s calculation for user %s", calc.CalcType, calc.UserID)
	return calc, nil
}

// GetCalculation gets a calculation by ID
func (r *CalculatorRepository) GetCalculation(ctx context.Context, id uint) (*database.Calculation, error) {
	var calc database.Calculation
	if err := r.db.WithContext(ctx).First(&calc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalculationNotFound.WithContext("calculation_id", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &calc, nil
}

// ListUserCalculations returns a page of the user's calculations, newest
// first, with the total count of the filtered set. Ties on created_at are
// broken by id so pagination never skips or duplicates rows.
func (r *CalculatorRepository) ListUserCalculations(ctx context.Context, userID string, limit, offset int, calcType string) ([]database.Calculation, int64, error) {
	if limit <= 0 {
		limit = 100
	}

	query := r.db.WithContext(ctx).Model(&database.Calculation{}).Where("user_id = ?", userID)
	if calcType != "" {
		query = query.Where("calc_type = ?", calcType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError(err)
	}

	var calcs []database.Calculation
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&calcs).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError(err)
	}

	return calcs, total, nil
}

// UpdateCalculationInterpretation amends the interpretation text
func (r *CalculatorRepository) UpdateCalculationInterpretation(ctx context.Context, id uint, interpretation string) (*database.Calculation, error) {
	calc, err := r.GetCalculation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(calc).Update("interpretation", interpretation).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	logger.Infof("Updated calculation %d", id)
	return calc, nil
}

// DeleteCalculation deletes a calculation by ID
func (r *CalculatorRepository) DeleteCalculation(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&database.Calculation{}, id)
	if result.Error != nil {
		return apperrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCalculationNotFound.WithContext("calculation_id", id)
	}
	logger.Infof("Deleted calculation %d", id)
	return nil
}

// DeleteUserCalculations deletes all of a user's calculations, optionally
// filtered by type, returning the number of deleted rows.
func (r *CalculatorRepository) DeleteUserCalculations(ctx context.Context, userID, calcType string) (int64, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if calcType != "" {
		query = query.Where("calc_type = ?", calcType)
	}

	result := query.Delete(&database.Calculation{})
	if result.Error != nil {
		return 0, apperrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.NewNotFoundError("no calculations found")
	}

	logger.Infof("Deleted %d calculations of user %s", result.RowsAffected, userID)
	return result.RowsAffected, nil
}

type typeAggregate struct {
	CalcType string
	Count    int64
	Avg      float64
}

// GetCalculationStats groups the user's calculations by type with count and
// mean result. A user without calculations yields an empty stats value, not
// an error.
func (r *CalculatorRepository) GetCalculationStats(ctx context.Context, userID string) (*CalculationStats, error) {
	var aggregates []typeAggregate
	err := r.db.WithContext(ctx).
		Model(&database.Calculation{}).
		Select("calc_type, COUNT(*) AS count, AVG(result) AS avg").
		Where("user_id = ?", userID).
		Group("calc_type").
		Find(&aggregates).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	stats := &CalculationStats{ByType: make(map[string]TypeStats)}
	for _, agg := range aggregates {
		stats.Total += agg.Count
		stats.ByType[agg.CalcType] = TypeStats{
			Count: agg.Count,
			Avg:   math.Round(agg.Avg*100) / 100,
		}
	}

	return stats, nil
}

// CreateHealthMetric persists a user-reported health metric
func (r *CalculatorRepository) CreateHealthMetric(ctx context.Context, metric *database.HealthMetric) (*database.HealthMetric, error) {
	if err := r.db.WithContext(ctx).Create(metric).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	logger.Infof("Created %s metric for user %s", metric.MetricType, metric.UserID)
	return metric, nil
}

// GetHealthMetric gets a health metric by ID
func (r *CalculatorRepository) GetHealthMetric(ctx context.Context, id uint) (*database.HealthMetric, error) {
	var metric database.HealthMetric
	if err := r.db.WithContext(ctx).First(&metric, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMetricNotFound.WithContext("metric_id", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &metric, nil
}

// ListUserMetrics returns the user's health metrics, newest first, optionally
// filtered by metric type.
func (r *CalculatorRepository) ListUserMetrics(ctx context.Context, userID, metricType string, limit int) ([]database.HealthMetric, error) {
	if limit <= 0 {
		limit = 100
	}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if metricType != "" {
		query = query.Where("metric_type = ?", metricType)
	}

	var metrics []database.HealthMetric
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&metrics).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return metrics, nil
}

// DeleteHealthMetric deletes a health metric by ID
func (r *CalculatorRepository) DeleteHealthMetric(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&database.HealthMetric{}, id)
	if result.Error != nil {
		return apperrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMetricNotFound.WithContext("metric_id", id)
	}
	logger.Infof("Deleted metric %d", id)
	return nil
}

// UserExists reports whether a user with the given ID exists. The check is
// advisory: storage errors are swallowed and reported as false.
func (r *CalculatorRepository) UserExists(ctx context.Context, userID string) bool {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&database.User{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		logger.Errorf("Failed to check user %s: %v", userID, err)
		return false
	}
	return count > 0
}
