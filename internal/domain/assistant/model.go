package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Turn maps to the chat_turn table: one user message and the assistant's
// reply, persisted only when the caller identifies themselves.
type Turn struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	UserMessage string    `db:"user_message" json:"user_message"`
	AIResponse  string    `db:"ai_response" json:"ai_response"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SessionSummary is one conversation thread for the session list view.
type SessionSummary struct {
	SessionID     string    `db:"session_id" json:"session_id"`
	TurnCount     int       `db:"turn_count" json:"turn_count"`
	LastMessageAt time.Time `db:"last_message_at" json:"last_message_at"`
}
