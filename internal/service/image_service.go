package service

import (
	"context"
	"errors"

	"character-chat-demo/backend/internal/ai"
	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/repository"

	"github.com/google/uuid"
)

// nsfwBlockedMessage explains the hard rating gate. Trust scores are stored
// but not consulted here; the copy says as much.
const nsfwBlockedMessage = "NSFW image generation is gated and disabled in this demo. " +
	"Earn trust and ensure adult age in a production-ready system."

const sfwCompletedMessage = "SFW image created (placeholder)"

// ImageService derives placeholder image responses. Nothing is persisted;
// the response id is fresh per call while the image URL is a pure function
// of the character's stored traits and the prompt.
type ImageService struct {
	characters repository.CharacterRepository
	users      repository.UserRepository
}

func NewImageService(characters repository.CharacterRepository, users repository.UserRepository) *ImageService {
	return &ImageService{characters: characters, users: users}
}

func (s *ImageService) Generate(ctx context.Context, req models.ImageRequest) (models.ImageGenResponse, error) {
	character, err := s.characters.FindByID(ctx, req.CharacterID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.ImageGenResponse{}, ErrCharacterNotFound
	}
	if err != nil {
		return models.ImageGenResponse{}, err
	}

	if _, err := s.users.FindByUsername(ctx, req.Username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.ImageGenResponse{}, ErrUserNotFound
		}
		return models.ImageGenResponse{}, err
	}

	if req.Rating == models.RatingNSFW {
		return models.ImageGenResponse{
			ID:      uuid.NewString(),
			Status:  models.ImageStatusBlocked,
			Message: nsfwBlockedMessage,
		}, nil
	}

	url := ai.PlaceholderImageURL(ai.ImageDescription(character, req.Prompt))
	return models.ImageGenResponse{
		ID:       uuid.NewString(),
		Status:   models.ImageStatusCompleted,
		Message:  sfwCompletedMessage,
		ImageURL: &url,
	}, nil
}
