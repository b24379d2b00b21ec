package models

import (
	"time"
)

// UserProfile is a stored user record. The username doubles as the internal
// store key, so upserts address the same row a reader finds by username.
type UserProfile struct {
	DocID      string    `gorm:"column:_id;primaryKey" json:"-"`
	Username   string    `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Age        *int      `json:"age"`
	TrustScore int       `gorm:"default:0" json:"trust_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName keeps the collection-style singular table name.
func (UserProfile) TableName() string { return "userprofile" }

// UpsertUserRequest is the request body for POST /users.
type UpsertUserRequest struct {
	Username   string `json:"username" binding:"required,min=2,max=32"`
	Age        *int   `json:"age" binding:"omitempty,gte=0,lte=150"`
	TrustScore int    `json:"trust_score" binding:"gte=0,lte=100"`
}

// UserProfileOut is the three-field projection returned by the user
// endpoints. Timestamps and the store key never leave the process.
type UserProfileOut struct {
	Username   string `json:"username"`
	Age        *int   `json:"age"`
	TrustScore int    `json:"trust_score"`
}
