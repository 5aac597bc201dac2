package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/realtime"
	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/task"
)

// Fanout pushes chat side effects to connected sockets and the notify
// queue. Everything here is best-effort; the message is already committed.
type Fanout struct {
	Hub      *realtime.Hub
	Enqueuer *task.Enqueuer
	Logger   *slog.Logger
}

func NewFanout(hub *realtime.Hub, enqueuer *task.Enqueuer, logger *slog.Logger) *Fanout {
	return &Fanout{Hub: hub, Enqueuer: enqueuer, Logger: logger}
}

type messageEvent struct {
	Type    string         `json:"type"`
	Message messagePayload `json:"message"`
}

type messagePayload struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at"`
}

type readEvent struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	ReaderID       string `json:"reader_id"`
	Count          int64  `json:"count"`
}

type threadEvent struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
}

func (f *Fanout) MessageSent(ctx context.Context, m chat.Message, vendorID string, senderIsAdmin bool) {
	payload, err := json.Marshal(messageEvent{
		Type: "message",
		Message: messagePayload{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Content:        m.Content,
			CreatedAt:      m.CreatedAt,
			ReadAt:         m.ReadAt,
		},
	})
	if err == nil {
		f.Hub.Broadcast(m.ConversationID, payload, m.SenderID)
	}

	// Nudge the vendor even when they are not subscribed to the thread,
	// so badge counts refresh without a reload.
	if senderIsAdmin {
		if nudge, err := json.Marshal(threadEvent{Type: "conversation_updated", ConversationID: m.ConversationID}); err == nil {
			f.Hub.NotifyUser(vendorID, nudge)
		}
	}

	if err := f.Enqueuer.EnqueueMessagePush(ctx, m, vendorID, senderIsAdmin); err != nil {
		f.Logger.Warn("could not enqueue message push", "messageId", m.ID, "error", err)
	}
}

func (f *Fanout) MessagesRead(ctx context.Context, conversationID, readerID string, count int64) {
	payload, err := json.Marshal(readEvent{
		Type:           "read",
		ConversationID: conversationID,
		ReaderID:       readerID,
		Count:          count,
	})
	if err == nil {
		f.Hub.Broadcast(conversationID, payload, readerID)
	}
}
