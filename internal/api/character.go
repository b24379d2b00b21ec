package api

import (
	"net/http"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/service"
	apperrors "character-chat-demo/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

type CharacterHandler struct {
	service *service.CharacterService
}

func NewCharacterHandler(service *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// CreateCharacter handles POST /characters.
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req models.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.FromBindingError(err))
		return
	}

	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(apperrors.NewServiceUnavailableError("STORE_ERROR", "Database not available"))
		return
	}

	c.JSON(http.StatusOK, out)
}

// ListCharacters handles GET /characters, newest first.
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	out, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(apperrors.NewServiceUnavailableError("STORE_ERROR", "Database not available"))
		return
	}

	c.JSON(http.StatusOK, out)
}
