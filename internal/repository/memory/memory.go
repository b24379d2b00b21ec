// Package memory provides in-memory repository implementations. They back
// the test suites and double as a zero-dependency store for local poking.
package memory

import (
	"context"
	"sort"
	"sync"

	"character-chat-demo/backend/internal/models"
	"character-chat-demo/backend/internal/repository"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]models.UserProfile
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.UserProfile)}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Insert(_ context.Context, user *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.DocID] = *user
	return nil
}

func (r *UserRepository) Update(_ context.Context, user *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.DocID] = *user
	return nil
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type CharacterRepository struct {
	mu         sync.Mutex
	characters []models.Character
}

func NewCharacterRepository() *CharacterRepository {
	return &CharacterRepository{}
}

func (r *CharacterRepository) Insert(_ context.Context, character *models.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.characters = append(r.characters, *character)
	return nil
}

func (r *CharacterRepository) FindByID(_ context.Context, id string) (*models.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.characters {
		if c.DocID == id {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CharacterRepository) ListNewestFirst(_ context.Context) ([]models.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Reverse insertion order first so equal timestamps still list the
	// later insert ahead, matching the store's descending sort.
	out := make([]models.Character, 0, len(r.characters))
	for i := len(r.characters) - 1; i >= 0; i-- {
		out = append(out, r.characters[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type MessageRepository struct {
	mu       sync.Mutex
	messages []models.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Insert(_ context.Context, message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *MessageRepository) ListByCharacter(_ context.Context, characterID string) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Message{}
	for _, m := range r.messages {
		if m.CharacterID == characterID {
			out = append(out, m)
		}
	}
	// Stable sort keeps insertion order for the equal timestamps of a turn.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Len reports the number of stored messages.
func (r *MessageRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}
