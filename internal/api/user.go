package api

import (
	"errors"
	"net/http"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/service"
	apperrors "character-chat-demo/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UpsertUser handles POST /users.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.FromBindingError(err))
		return
	}

	out, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		c.Error(apperrors.NewServiceUnavailableError("STORE_ERROR", "Database not available"))
		return
	}

	c.JSON(http.StatusOK, out)
}

// GetUser handles GET /users/:username.
func (h *UserHandler) GetUser(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.Error(apperrors.NewNotFoundError("USER_NOT_FOUND", "User not found"))
			return
		}
		c.Error(apperrors.NewServiceUnavailableError("STORE_ERROR", "Database not available"))
		return
	}

	c.JSON(http.StatusOK, out)
}
