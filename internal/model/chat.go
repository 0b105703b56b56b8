package model

import "time"

// Chat roles for a single turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in a user's mental-health chat history. Rows are
// append-only; the auto-increment ID preserves turn order.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:char(36);index;not null"`
	Role      string    `json:"role" gorm:"size:16;not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"timestamp"`
}
