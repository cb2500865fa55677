package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcalc/backend/internal/domain"
)

// ActivitiesHandler serves the supported-activities listing
type ActivitiesHandler struct {
	catalog domain.ActivityCatalog
}

// NewActivitiesHandler creates a new activities handler. catalog may be nil
// when the external API is disabled.
func NewActivitiesHandler(catalog domain.ActivityCatalog) *ActivitiesHandler {
	return &ActivitiesHandler{catalog: catalog}
}

// GetActivities handles GET /api/activities
func (h *ActivitiesHandler) GetActivities(c *gin.Context) {
	var activities []string
	if h.catalog != nil {
		activities = h.catalog.GetSupportedActivities(c.Request.Context())
	}
	if activities == nil {
		activities = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      len(activities),
		"activities": activities,
	})
}
