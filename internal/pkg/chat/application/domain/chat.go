package chat

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrConversationNotFound = errors.New("chat: conversation not found")
	ErrEmptyMessage         = errors.New("chat: message content is empty")
	ErrNotParticipant       = errors.New("chat: user is not part of this conversation")
)

// Conversation is the single support thread between one vendor account and
// the admin team. Uniqueness per vendor is enforced by the store, so
// concurrent opens converge on the same thread.
type Conversation struct {
	ID            string    `db:"id"`
	VendorID      string    `db:"vendor_id"`
	LastMessageAt time.Time `db:"last_message_at"`
	CreatedAt     time.Time `db:"created_at"`
}

// Message belongs to a conversation. ReadAt stays nil until the other side
// opens the thread.
type Message struct {
	ID             string     `db:"id"`
	ConversationID string     `db:"conversation_id"`
	SenderID       string     `db:"sender_id"`
	Content        string     `db:"content"`
	CreatedAt      time.Time  `db:"created_at"`
	ReadAt         *time.Time `db:"read_at"`
}

// ConversationSummary is the admin directory row: the thread plus the
// vendor's display name and how many of their messages are still unread.
type ConversationSummary struct {
	Conversation
	VendorName  string
	UnreadCount int
}

// ValidateContent rejects blank messages and returns the trimmed content.
func ValidateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyMessage
	}
	return trimmed, nil
}
