package api

import (
	"errors"
	"net/http"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/service"
	apperrors "character-chat-demo/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *service.ChatService
}

func NewMessageHandler(service *service.ChatService) *MessageHandler {
	return &MessageHandler{service: service}
}

// PostMessage handles POST /chat/:character_id/messages. The response is the
// character's full ordered history, not just the new pair.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.FromBindingError(err))
		return
	}

	out, err := h.service.PostTurn(c.Request.Context(), c.Param("character_id"), req)
	if err != nil {
		if errors.Is(err, service.ErrCharacterNotFound) {
			c.Error(apperrors.NewNotFoundError("CHARACTER_NOT_FOUND", "Character not found"))
			return
		}
		c.Error(apperrors.NewServiceUnavailableError("STORE_ERROR", "Database not available"))
		return
	}

	c.JSON(http.StatusOK, out)
}

// GetMessages handles GET /chat/:character_id/messages. An unknown character
// yields an empty history.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	out, err := h.service.History(c.Request.Context(), c.Param("character_id"))
	if err != nil {
		c.Error(apperrors.NewServiceUnavailableError("STORE_ERROR", "Database not available"))
		return
	}

	c.JSON(http.StatusOK, out)
}
