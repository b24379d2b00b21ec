package models

import (
	"time"
)

// Message roles. Replies are attributed to the character, so a character-role
// message carries the character's display name in its username field.
const (
	RoleUser      = "user"
	RoleCharacter = "character"
)

// Message is a stored chat message. Messages are written in pairs per chat
// turn (user, then character) and are never mutated or deleted.
type Message struct {
	DocID       string    `gorm:"column:_id;primaryKey" json:"-"`
	CharacterID string    `gorm:"index;not null" json:"character_id"`
	Username    string    `gorm:"not null" json:"username"`
	Text        string    `gorm:"size:2000;not null" json:"text"`
	Role        string    `gorm:"not null" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Message) TableName() string { return "message" }

// ChatRequest is the request body for POST /chat/:character_id/messages.
// The username is free-form here; only stored profiles constrain it.
type ChatRequest struct {
	Username string `json:"username" binding:"required"`
	Text     string `json:"text" binding:"required,min=1,max=2000"`
}

// MessageOut is the outbound message projection with the public id.
type MessageOut struct {
	ID          string    `json:"id"`
	CharacterID string    `json:"character_id"`
	Username    string    `json:"username"`
	Text        string    `json:"text"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}
