package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcalc/backend/internal/domain"
	apperrors "github.com/medcalc/backend/internal/errors"
	"github.com/medcalc/backend/internal/repository"
)

// UserHandler serves the user lifecycle endpoints
type UserHandler struct {
	users domain.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users domain.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetUser handles GET /api/users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateUser handles PUT /api/users/:user_id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var body struct {
		Email     *string `json:"email"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), c.Param("user_id"), repository.UserUpdate{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		IsActive:  body.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/users/:user_id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("user_id")
	if err := h.users.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted", "user_id": userID})
}
