// model/chat.go
package model

import (
	"time"
)

// ChatMessage is one transcript row of a practice conversation
type ChatMessage struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	SessionID string    `json:"session_id" gorm:"not null;index"`
	Role      string    `json:"role" gorm:"default:user"` // user, assistant, system
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
