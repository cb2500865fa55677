package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medcalc/backend/internal/domain"
	apperrors "github.com/medcalc/backend/internal/errors"
)

// CalculationHandler serves the calculation submission and history endpoints
type CalculationHandler struct {
	calculations domain.CalculationService
	history      domain.HistoryService
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(calculations domain.CalculationService, history domain.HistoryService) *CalculationHandler {
	return &CalculationHandler{calculations: calculations, history: history}
}

// SubmitBMI handles POST /api/calculations/imt
func (h *CalculationHandler) SubmitBMI(c *gin.Context) {
	var input domain.BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	calc, err := h.calculations.SubmitBMI(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCalculationResponse(calc))
}

// SubmitCalories handles POST /api/calculations/calories
func (h *CalculationHandler) SubmitCalories(c *gin.Context) {
	var input domain.CaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	calc, err := h.calculations.SubmitCalories(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCalculationResponse(calc))
}

// SubmitBloodPressure handles POST /api/calculations/blood-pressure
func (h *CalculationHandler) SubmitBloodPressure(c *gin.Context) {
	var input domain.BloodPressureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	calc, err := h.calculations.SubmitBloodPressure(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCalculationResponse(calc))
}

// GetHistory handles GET /api/calculations/history
func (h *CalculationHandler) GetHistory(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, apperrors.NewValidationError("user_id is required"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		respondError(c, apperrors.NewValidationError("limit must be between 1 and 100"))
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		respondError(c, apperrors.NewValidationError("offset must not be negative"))
		return
	}

	calcType := c.Query("calc_type")
	if calcType != "" && !domain.KnownCalcType(calcType) {
		respondError(c, apperrors.NewValidationError("unknown calc_type"))
		return
	}

	calcs, total, err := h.history.GetHistory(c.Request.Context(), userID, limit, offset, calcType)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]CalculationResponse, 0, len(calcs))
	for i := range calcs {
		items = append(items, toCalculationResponse(&calcs[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      userID,
		"total":        total,
		"limit":        limit,
		"offset":       offset,
		"calculations": items,
	})
}

// GetStats handles GET /api/calculations/stats
func (h *CalculationHandler) GetStats(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, apperrors.NewValidationError("user_id is required"))
		return
	}

	stats, err := h.history.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"stats":   stats,
	})
}

// UpdateInterpretation handles PUT /api/calculations/:id/interpretation
func (h *CalculationHandler) UpdateInterpretation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, apperrors.NewValidationError("invalid calculation id"))
		return
	}

	var body struct {
		Interpretation string `json:"interpretation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	calc, err := h.history.UpdateInterpretation(c.Request.Context(), uint(id), body.Interpretation)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCalculationResponse(calc))
}

// DeleteCalculation handles DELETE /api/calculations/:id
func (h *CalculationHandler) DeleteCalculation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, apperrors.NewValidationError("invalid calculation id"))
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, apperrors.NewValidationError("user_id is required"))
		return
	}

	if err := h.history.DeleteCalculation(c.Request.Context(), userID, uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Calculation deleted",
		"calculation_id": id,
	})
}

// DeleteAll handles DELETE /api/calculations
func (h *CalculationHandler) DeleteAll(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, apperrors.NewValidationError("user_id is required"))
		return
	}

	calcType := c.Query("calc_type")
	if calcType != "" && !domain.KnownCalcType(calcType) {
		respondError(c, apperrors.NewValidationError("unknown calc_type"))
		return
	}

	count, err := h.history.DeleteUserCalculations(c.Request.Context(), userID, calcType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Calculations deleted",
		"deleted": count,
	})
}
