package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthCheckHandler reports service and database health
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new healthcheck handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck handles GET /healthcheck
func (h *HealthCheckHandler) HealthCheck(c *gin.Context) {
	dbStatus := "connected"
	status := "healthy"
	code := http.StatusOK

	if err := h.db.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
		dbStatus = "error: " + err.Error()
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "Medical Calculator API",
	})
}
