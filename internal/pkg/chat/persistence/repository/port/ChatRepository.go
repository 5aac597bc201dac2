package repository

import (
	"context"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
)

// ChatRepository defines persistence for conversations and messages.
type ChatRepository interface {
	// GetOrCreateConversation returns the vendor's single thread, creating
	// it on first use. Safe under concurrent calls for the same vendor.
	GetOrCreateConversation(ctx context.Context, vendorID string) (chat.Conversation, error)
	GetConversation(ctx context.Context, id string) (chat.Conversation, error)

	SaveMessage(ctx context.Context, conversationID, senderID, content string) (chat.Message, error)
	ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error)

	// MarkRead stamps every unread message in the conversation that was not
	// sent by reader. Returns how many rows were stamped.
	MarkRead(ctx context.Context, conversationID, readerID string) (int64, error)
	UnreadCount(ctx context.Context, conversationID, readerID string) (int, error)

	// ListConversationSummaries returns every thread with the vendor name
	// and per-thread unread count in one round trip, newest activity first.
	ListConversationSummaries(ctx context.Context) ([]chat.ConversationSummary, error)
}
