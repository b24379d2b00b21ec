package service

import (
	"context"
	"time"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/repository"

	"github.com/google/uuid"
)

// CharacterService owns character creation and listing. Creation is always
// an insert under a fresh id; names are not unique and characters are
// immutable once stored.
type CharacterService struct {
	repo repository.CharacterRepository
}

func NewCharacterService(repo repository.CharacterRepository) *CharacterService {
	return &CharacterService{repo: repo}
}

func (s *CharacterService) Create(ctx context.Context, req models.CreateCharacterRequest) (models.CharacterOut, error) {
	now := time.Now().UTC()
	character := &models.Character{
		DocID:           uuid.NewString(),
		Name:            req.Name,
		Personality:     req.Personality,
		Appearance:      req.Appearance,
		Location:        req.Location,
		CreatorUsername: req.CreatorUsername,
		NSFWAllowed:     req.NSFWAllowed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Insert(ctx, character); err != nil {
		return models.CharacterOut{}, err
	}
	return models.NewCharacterOut(*character), nil
}

// List returns every character, newest first. Full scan; cursor pagination
// is the known scaling gap at anything beyond demo volume.
func (s *CharacterService) List(ctx context.Context) ([]models.CharacterOut, error) {
	characters, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewCharacterOutList(characters), nil
}
