package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medcalc/backend/internal/domain"
	apperrors "github.com/medcalc/backend/internal/errors"
)

// MetricsHandler serves the health metric endpoints
type MetricsHandler struct {
	metrics domain.MetricsService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metrics domain.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// AddMetric handles POST /api/metrics
func (h *MetricsHandler) AddMetric(c *gin.Context) {
	var input domain.HealthMetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	metric, err := h.metrics.AddMetric(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMetricResponse(metric))
}

// GetMetrics handles GET /api/metrics
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, apperrors.NewValidationError("user_id is required"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 100 {
		respondError(c, apperrors.NewValidationError("limit must be between 1 and 100"))
		return
	}

	metrics, err := h.metrics.GetUserMetrics(c.Request.Context(), userID, c.Query("metric_type"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]MetricResponse, 0, len(metrics))
	for i := range metrics {
		items = append(items, toMetricResponse(&metrics[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"total":   len(items),
		"metrics": items,
	})
}

// DeleteMetric handles DELETE /api/metrics/:id
func (h *MetricsHandler) DeleteMetric(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, apperrors.NewValidationError("invalid metric id"))
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, apperrors.NewValidationError("user_id is required"))
		return
	}

	if err := h.metrics.DeleteMetric(c.Request.Context(), userID, uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Metric deleted", "metric_id": id})
}
