package repository

import (
	"context"
	"errors"

	"character-chat-demo/backend/internal/models"

	"gorm.io/gorm"
)

type CharacterRepository interface {
	Insert(ctx context.Context, character *models.Character) error
	FindByID(ctx context.Context, id string) (*models.Character, error)
	// ListNewestFirst returns every character ordered by creation time
	// descending. Full scan; acceptable at demo scale.
	ListNewestFirst(ctx context.Context) ([]models.Character, error)
}

type GormCharacterRepository struct {
	db *gorm.DB
}

func NewGormCharacterRepository(db *gorm.DB) *GormCharacterRepository {
	return &GormCharacterRepository{db: db}
}

func (r *GormCharacterRepository) Insert(ctx context.Context, character *models.Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

func (r *GormCharacterRepository) FindByID(ctx context.Context, id string) (*models.Character, error) {
	var character models.Character
	err := r.db.WithContext(ctx).Where("_id = ?", id).First(&character).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *GormCharacterRepository) ListNewestFirst(ctx context.Context) ([]models.Character, error) {
	var characters []models.Character
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&characters).Error
	if characters == nil {
		characters = []models.Character{}
	}
	return characters, err
}
