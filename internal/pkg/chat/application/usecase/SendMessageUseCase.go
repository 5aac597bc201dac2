package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/port"
)

// MessageEvents receives post-commit side effects of the chat flow. The
// realtime hub and the push queue hang off this port; failures there never
// fail the send itself.
type MessageEvents interface {
	MessageSent(ctx context.Context, m chat.Message, vendorID string, senderIsAdmin bool)
	MessagesRead(ctx context.Context, conversationID, readerID string, count int64)
}

// SendMessageInput carries the authenticated sender alongside the message.
// SenderIsAdmin widens the participant check to any thread.
type SendMessageInput struct {
	ConversationID string
	SenderID       string
	SenderIsAdmin  bool
	Content        string
}

// SendMessageUseCase persists a message after checking the sender belongs to
// the thread, then fans out realtime and push notifications.
type SendMessageUseCase struct {
	Repo   repository.ChatRepository
	Events MessageEvents
}

func NewSendMessageUseCase(repo repository.ChatRepository, events MessageEvents) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Events: events}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	content, err := chat.ValidateContent(in.Content)
	if err != nil {
		return nil, err
	}

	cv, err := uc.Repo.GetConversation(ctx, in.ConversationID)
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !in.SenderIsAdmin && cv.VendorID != in.SenderID {
		return nil, chat.ErrNotParticipant
	}

	m, err := uc.Repo.SaveMessage(ctx, in.ConversationID, in.SenderID, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Events != nil {
		uc.Events.MessageSent(ctx, m, cv.VendorID, in.SenderIsAdmin)
	}
	return &m, nil
}
