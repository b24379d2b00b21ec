package models

import (
	"time"
)

// Character is a stored character definition. Characters are immutable after
// creation; there is no update or delete path.
type Character struct {
	DocID           string    `gorm:"column:_id;primaryKey" json:"-"`
	Name            string    `gorm:"size:50;not null" json:"name"`
	Personality     string    `gorm:"size:500;not null" json:"personality"`
	Appearance      *string   `gorm:"size:500" json:"appearance"`
	Location        *string   `gorm:"size:120" json:"location"`
	CreatorUsername string    `gorm:"not null" json:"creator_username"`
	NSFWAllowed     bool      `gorm:"default:false" json:"nsfw_allowed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Character) TableName() string { return "character" }

// CreateCharacterRequest is the request body for POST /characters. Names are
// not unique; creation is always an insert.
type CreateCharacterRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=50"`
	Personality     string  `json:"personality" binding:"required,min=4,max=500"`
	Appearance      *string `json:"appearance" binding:"omitempty,max=500"`
	Location        *string `json:"location" binding:"omitempty,max=120"`
	CreatorUsername string  `json:"creator_username" binding:"required"`
	NSFWAllowed     bool    `json:"nsfw_allowed"`
}

// CharacterOut is the outbound character projection with the public id.
type CharacterOut struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Personality     string    `json:"personality"`
	Appearance      *string   `json:"appearance"`
	Location        *string   `json:"location"`
	CreatorUsername string    `json:"creator_username"`
	NSFWAllowed     bool      `json:"nsfw_allowed"`
	CreatedAt       time.Time `json:"created_at"`
}
