// Package di wires repositories and services behind explicit constructors so
// handlers receive their dependencies instead of reaching for process-wide
// state. The store handle is the only shared resource and its absence is a
// first-class, queryable condition.
package di

import (
	"character-chat-demo/backend/internal/repository"
	"character-chat-demo/backend/internal/service"
	"character-chat-demo/backend/pkg/logger"

	"gorm.io/gorm"
)

// Container holds all the dependencies for the application. DB may be nil
// when no store is configured; data services are then left unset and the
// router guards their routes.
type Container struct {
	DB     *gorm.DB
	Logger *logger.Logger

	UserService      *service.UserService
	CharacterService *service.CharacterService
	ChatService      *service.ChatService
	ImageService     *service.ImageService
}

// New creates a new dependency injection container
func New(db *gorm.DB, log *logger.Logger) *Container {
	c := &Container{
		DB:     db,
		Logger: log,
	}

	if db == nil {
		return c
	}

	users := repository.NewGormUserRepository(db)
	characters := repository.NewGormCharacterRepository(db)
	messages := repository.NewGormMessageRepository(db)

	c.UserService = service.NewUserService(users)
	c.CharacterService = service.NewCharacterService(characters)
	c.ChatService = service.NewChatService(characters, messages)
	c.ImageService = service.NewImageService(characters, users)

	return c
}

// StoreAvailable reports whether the data services are wired to a store.
func (c *Container) StoreAvailable() bool {
	return c.UserService != nil
}
