package service

import (
	"context"
	"errors"
	"time"

	"character-chat-demo/backend/internal/ai"
	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/repository"

	"github.com/google/uuid"
)

// ChatService owns chat turns: one user message plus its generated character
// reply, written under a single timestamp.
type ChatService struct {
	characters repository.CharacterRepository
	messages   repository.MessageRepository
}

func NewChatService(characters repository.CharacterRepository, messages repository.MessageRepository) *ChatService {
	return &ChatService{characters: characters, messages: messages}
}

// PostTurn validates the character, stores the user message, derives and
// stores the character reply, then returns the full ascending history for
// the character. The two writes share one timestamp but have distinct ids.
// There is no transaction across them: a failure after the first write
// leaves an orphaned user message, accepted at demo scale.
func (s *ChatService) PostTurn(ctx context.Context, characterID string, req models.ChatRequest) ([]models.MessageOut, error) {
	character, err := s.characters.FindByID(ctx, characterID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCharacterNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	userMsg := &models.Message{
		DocID:       uuid.NewString(),
		CharacterID: characterID,
		Username:    req.Username,
		Text:        req.Text,
		Role:        models.RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.messages.Insert(ctx, userMsg); err != nil {
		return nil, err
	}

	// The reply is attributed to the character, not the requesting user.
	replyMsg := &models.Message{
		DocID:       uuid.NewString(),
		CharacterID: characterID,
		Username:    character.Name,
		Text:        ai.GenerateReply(character, req.Text),
		Role:        models.RoleCharacter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.messages.Insert(ctx, replyMsg); err != nil {
		return nil, err
	}

	return s.History(ctx, characterID)
}

// History returns the full ordered message history for a character. An
// unknown character yields an empty history rather than an error; reads
// treat the history as a plain filter over the message collection.
func (s *ChatService) History(ctx context.Context, characterID string) ([]models.MessageOut, error) {
	messages, err := s.messages.ListByCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return models.NewMessageOutList(messages), nil
}
