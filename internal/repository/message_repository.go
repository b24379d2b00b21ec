package repository

import (
	"context"

	"character-chat-demo/backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *models.Message) error
	// ListByCharacter returns the full history for a character ordered by
	// creation time ascending. An unknown character yields an empty slice.
	ListByCharacter(ctx context.Context, characterID string) ([]models.Message, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Insert(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *GormMessageRepository) ListByCharacter(ctx context.Context, characterID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("created_at ASC").
		Find(&messages).Error
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, err
}
