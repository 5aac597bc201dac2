package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/port"
)

// ListMessagesUseCase returns a thread's messages oldest-first, plus the
// reader's current unread count.
type ListMessagesUseCase struct {
	Repo repository.ChatRepository
}

func NewListMessagesUseCase(repo repository.ChatRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

type ListMessagesResult struct {
	Messages []chat.Message
	Unread   int
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, conversationID, readerID string, readerIsAdmin bool) (*ListMessagesResult, error) {
	cv, err := uc.Repo.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !readerIsAdmin && cv.VendorID != readerID {
		return nil, chat.ErrNotParticipant
	}

	msgs, err := uc.Repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	unread, err := uc.Repo.UnreadCount(ctx, conversationID, readerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &ListMessagesResult{Messages: msgs, Unread: unread}, nil
}
