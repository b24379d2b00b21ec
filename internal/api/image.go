package api

import (
	"errors"
	"net/http"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/service"
	apperrors "character-chat-demo/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	service *service.ImageService
}

func NewImageHandler(service *service.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// GenerateImage handles POST /images. A blocked NSFW request is a successful
// response carrying status "blocked", not an error.
func (h *ImageHandler) GenerateImage(c *gin.Context) {
	var req models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.FromBindingError(err))
		return
	}
	if req.Rating == "" {
		req.Rating = models.RatingSFW
	}

	out, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCharacterNotFound):
			c.Error(apperrors.NewNotFoundError("CHARACTER_NOT_FOUND", "Character not found"))
		case errors.Is(err, service.ErrUserNotFound):
			c.Error(apperrors.NewNotFoundError("USER_NOT_FOUND", "User not found"))
		default:
			c.Error(apperrors.NewServiceUnavailableError("STORE_ERROR", "Database not available"))
		}
		return
	}

	c.JSON(http.StatusOK, out)
}
