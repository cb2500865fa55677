package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medcalc/backend/internal/database"
	apperrors "github.com/medcalc/backend/internal/errors"
	"github.com/medcalc/backend/internal/logger"
)

// CalculationResponse is the wire shape of a persisted calculation
type CalculationResponse struct {
	ID             uint      `json:"id"`
	UserID         string    `json:"user_id"`
	CalcType       string    `json:"calc_type"`
	InputData      string    `json:"input_data"`
	Result         float64   `json:"result"`
	Interpretation *string   `json:"interpretation,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toCalculationResponse(calc *database.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:             calc.ID,
		UserID:         calc.UserID,
		CalcType:       calc.CalcType,
		InputData:      calc.InputData,
		Result:         calc.Result,
		Interpretation: calc.Interpretation,
		CreatedAt:      calc.CreatedAt,
	}
}

// UserResponse is the wire shape of a user record
type UserResponse struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(user *database.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		UserID:    user.UserID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MetricResponse is the wire shape of a health metric
type MetricResponse struct {
	ID         uint      `json:"id"`
	UserID     string    `json:"user_id"`
	MetricType string    `json:"metric_type"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toMetricResponse(metric *database.HealthMetric) MetricResponse {
	return MetricResponse{
		ID:         metric.ID,
		UserID:     metric.UserID,
		MetricType: metric.MetricType,
		Value:      metric.Value,
		Unit:       metric.Unit,
		Notes:      metric.Notes,
		CreatedAt:  metric.CreatedAt,
	}
}

// respondError maps an application error to an HTTP status and logs it.
// Internal failures are reported with a generic message so storage details
// never leak to the caller.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Errorf("Unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", appErr.LogFields()...)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	logger.Warn("Request rejected", appErr.LogFields()...)
	c.JSON(status, gin.H{"error": appErr.Message})
}
